// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package recorder provides an interceptor writing a trace of executed hints.
package recorder

import (
	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/interceptor"
	"github.com/cockroachdb/errors"
)

// MakeWrapper returns a function wrapping a chain into a Recorder writing to sink. The
// created recorder is reported through created if it is not nil.
func MakeWrapper(sink Sink, created func(*Recorder)) interceptor.WrapFunc {
	return func(inner interceptor.Interceptor) interceptor.Interceptor {
		r := Wrap(inner, sink)
		if created != nil {
			created(r)
		}
		return r
	}
}

// Wrap makes a Recorder owning child.
func Wrap(child interceptor.Interceptor, sink Sink) *Recorder {
	return &Recorder{
		child: child,
		sink:  sink,
	}
}

// Recorder writes one record per executed hint. Failing to write a record does not
// change the outcome of the hint; such failures are collected and reported by Err and
// Close.
type Recorder struct {
	interceptor.NilInterceptor
	child interceptor.Interceptor
	sink  Sink
	step  uint64
	err   error
}

func (r *Recorder) Child() interceptor.Interceptor {
	return r.child
}

func (r *Recorder) InterceptExecuteHint(req *interceptor.ExecuteHintRequest) (bool, error) {
	err := interceptor.ExecuteHintChain(r.child, req)
	rec := Record{
		Step:     r.step,
		Kind:     hint.KindOf(req.HintData),
		Selector: selectorOf(req.HintData),
	}
	if err != nil {
		rec.Err = err.Error()
	}
	if werr := r.sink.Write(rec); werr != nil {
		r.err = errors.CombineErrors(r.err, werr)
	}
	return true, err
}

func (r *Recorder) InterceptConsumeStep() bool {
	r.step++
	interceptor.ConsumeStepChain(r.child)
	return true
}

// Err returns the failures collected while writing records.
func (r *Recorder) Err() error {
	return r.err
}

// Close closes the sink and reports all write failures.
func (r *Recorder) Close() error {
	return errors.Join(r.err, r.sink.Close())
}

func selectorOf(data any) string {
	c, ok := data.(*hint.Cheatcode)
	if !ok {
		return ""
	}
	if s, ok := felt.AsShortString(c.Selector); ok {
		return s
	}
	return c.Selector.Hex()
}
