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

// Package logging provides a transparent interceptor writing every request passing
// through it, together with its outcome, to a debug log.
package logging

import (
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/interceptor"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/vm"
)

// MakeWrapper returns a function wrapping a chain into a logging Link.
func MakeWrapper(log logger.Logger) interceptor.WrapFunc {
	return func(inner interceptor.Interceptor) interceptor.Interceptor {
		return Wrap(inner, log)
	}
}

// Wrap makes a logging Link owning child.
func Wrap(child interceptor.Interceptor, log logger.Logger) *Link {
	return &Link{
		child: child,
		log:   log,
	}
}

// Link resolves every request by running the rest of the chain itself, so that it can
// log the answer. Observable behaviour of the chain is unchanged.
type Link struct {
	child interceptor.Interceptor
	log   logger.Logger
}

func (l *Link) Child() interceptor.Interceptor {
	return l.child
}

func (l *Link) InterceptCompileHint(req *interceptor.CompileHintRequest) (any, bool, error) {
	l.writeLog("CompileHint, %q, %v", req.Code, req.ApTracking)
	data, err := interceptor.CompileHintChain(l.child, req)
	if err != nil {
		l.writeLog("CompileHint, %q, failed: %v", req.Code, err)
	}
	return data, true, err
}

func (l *Link) InterceptExecuteHint(req *interceptor.ExecuteHintRequest) (bool, error) {
	kind := hint.KindOf(req.HintData)
	l.writeLog("ExecuteHint, %v", kind)
	err := interceptor.ExecuteHintChain(l.child, req)
	if err != nil {
		l.writeLog("ExecuteHint, %v, failed: %v", kind, err)
	}
	return true, err
}

func (l *Link) InterceptConsumed() (bool, bool) {
	res := interceptor.ConsumedChain(l.child)
	l.writeLog("Consumed, %v", res)
	return res, true
}

func (l *Link) InterceptConsumeStep() bool {
	l.writeLog("ConsumeStep")
	interceptor.ConsumeStepChain(l.child)
	return true
}

func (l *Link) InterceptNSteps() (uint64, bool, bool) {
	steps, bounded := interceptor.NStepsChain(l.child)
	l.writeLog("NSteps, %v, %v", steps, bounded)
	return steps, bounded, true
}

func (l *Link) InterceptRunResources() (*vm.RunResources, bool) {
	l.writeLog("RunResources")
	return interceptor.RunResourcesChain(l.child), true
}

func (l *Link) writeLog(format string, a ...any) {
	l.log.Debugf(format, a...)
}
