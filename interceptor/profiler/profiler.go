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

// Package profiler provides an interceptor collecting execution statistics per hint
// kind.
package profiler

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/interceptor"
	"github.com/jedib0t/go-pretty/v6/table"
)

// MakeWrapper returns a function wrapping a chain into a Profiler. The created profiler
// is reported through sink so that it can be printed after the run.
func MakeWrapper(sink func(*Profiler)) interceptor.WrapFunc {
	return func(inner interceptor.Interceptor) interceptor.Interceptor {
		p := Wrap(inner)
		if sink != nil {
			sink(p)
		}
		return p
	}
}

// Wrap makes a Profiler owning child.
func Wrap(child interceptor.Interceptor) *Profiler {
	return &Profiler{
		child: child,
		stats: make(map[string]*Stats),
		now:   time.Now,
	}
}

// Stats summarises the executions of one kind of hint.
type Stats struct {
	Kind       string
	Executions uint64
	Failures   uint64
	Duration   time.Duration
}

// Profiler measures every execution request it forwards and counts consumed steps.
type Profiler struct {
	interceptor.NilInterceptor
	child interceptor.Interceptor
	stats map[string]*Stats
	steps uint64
	now   func() time.Time
}

func (p *Profiler) Child() interceptor.Interceptor {
	return p.child
}

func (p *Profiler) InterceptExecuteHint(req *interceptor.ExecuteHintRequest) (bool, error) {
	start := p.now()
	err := interceptor.ExecuteHintChain(p.child, req)
	elapsed := p.now().Sub(start)

	kind := kindOf(req.HintData)
	s, found := p.stats[kind]
	if !found {
		s = &Stats{Kind: kind}
		p.stats[kind] = s
	}
	s.Executions++
	s.Duration += elapsed
	if err != nil {
		s.Failures++
	}
	return true, err
}

func (p *Profiler) InterceptConsumeStep() bool {
	p.steps++
	interceptor.ConsumeStepChain(p.child)
	return true
}

// Steps returns the number of steps charged through this link.
func (p *Profiler) Steps() uint64 {
	return p.steps
}

// Stats returns the collected statistics ordered by kind.
func (p *Profiler) Stats() []Stats {
	res := make([]Stats, 0, len(p.stats))
	for _, s := range p.stats {
		res = append(res, *s)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Kind < res[j].Kind
	})
	return res
}

// Print renders the statistics as a table.
func (p *Profiler) Print(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Hint", "Executions", "Failures", "Total time", "Avg time"})

	var total Stats
	for _, s := range p.Stats() {
		t.AppendRow(table.Row{s.Kind, s.Executions, s.Failures, s.Duration, average(s)})
		total.Executions += s.Executions
		total.Failures += s.Failures
		total.Duration += s.Duration
	}
	t.AppendFooter(table.Row{fmt.Sprintf("Total (%d steps)", p.steps), total.Executions, total.Failures, total.Duration, average(total)})
	t.Render()
}

func average(s Stats) time.Duration {
	if s.Executions == 0 {
		return 0
	}
	return s.Duration / time.Duration(s.Executions)
}

// kindOf distinguishes cheatcodes by their selector.
func kindOf(data any) string {
	kind := hint.KindOf(data)
	if c, ok := data.(*hint.Cheatcode); ok {
		if selector, ok := felt.AsShortString(c.Selector); ok && selector != "" {
			return fmt.Sprintf("%s(%s)", kind, selector)
		}
	}
	return kind
}
