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

// Package runner drives a machine through a scenario of hints, playing the part of the
// host that owns the execution loop.
package runner

import (
	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/interceptor/contractexec"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/vm"
	"github.com/cockroachdb/errors"
)

var ErrResourcesExhausted = errors.New("run resources exhausted")

// Runner executes scenarios through a hint processor and charges every executed hint
// to a resource tracker. Both are typically the same interceptor chain.
type Runner struct {
	processor hint.Processor
	tracker   vm.ResourceTracker
	log       logger.Logger
}

func New(processor hint.Processor, tracker vm.ResourceTracker, log logger.Logger) *Runner {
	return &Runner{
		processor: processor,
		tracker:   tracker,
		log:       log,
	}
}

// Result describes a finished run.
type Result struct {
	// Steps is the number of hints executed successfully.
	Steps   int
	Machine *vm.VirtualMachine
	Scopes  *hint.ExecutionScopes
}

// Run executes the steps of s in order on a fresh machine. The run stops at the first
// failing hint or as soon as the budget is consumed; the partial result is returned
// together with the error.
func (r *Runner) Run(s *Scenario) (*Result, error) {
	res := &Result{
		Machine: vm.NewVirtualMachine(),
		Scopes:  hint.NewExecutionScopes(),
	}
	for i, step := range s.Steps {
		if r.tracker.Consumed() {
			return res, errors.Wrapf(ErrResourcesExhausted, "after %d of %d steps", i, len(s.Steps))
		}
		data, frame, err := r.prepare(res.Machine, step)
		if err != nil {
			return res, errors.Wrapf(err, "cannot prepare step %d", i)
		}
		r.log.Debugf("step %d: executing %s hint", i, hint.KindOf(data))
		if err := r.processor.ExecuteHint(res.Machine, res.Scopes, data, nil); err != nil {
			return res, errors.Wrapf(err, "step %d failed", i)
		}
		r.tracker.ConsumeStep()
		res.Steps++

		if res.Machine.AP, err = res.Machine.AP.Add(frame); err != nil {
			return res, err
		}
	}
	return res, nil
}

// prepare lays out the operands of step below ap and returns the hint to execute
// together with the number of cells it occupies.
func (r *Runner) prepare(machine *vm.VirtualMachine, step Step) (any, int64, error) {
	switch {
	case step.Print != nil:
		return layoutCheatcode(machine, contractexec.PrintSelector, step.Print)
	case step.Cheatcode != nil:
		return layoutCheatcode(machine, step.Cheatcode.Selector, step.Cheatcode.Inputs)
	case step.Code != "":
		data, err := r.processor.CompileHint(step.Code, hint.ApTracking{}, nil, nil)
		return data, 1, err
	case step.AllocSegment:
		return &hint.AllocSegment{Dst: vm.CellRef{Register: vm.AP}}, 1, nil
	}
	return nil, 0, errors.Wrap(ErrInvalidScenario, "empty step")
}

// layoutCheatcode copies inputs into a new segment and stores the bounds of that
// segment at [ap] and [ap+1]. The following two cells are reserved for the output.
func layoutCheatcode(machine *vm.VirtualMachine, selector string, inputs []Value) (any, int64, error) {
	sel, err := felt.FromShortString(selector)
	if err != nil {
		return nil, 0, err
	}
	start := machine.Memory.AddSegment()
	end := start
	for _, input := range inputs {
		if err := machine.Memory.Insert(end, vm.FeltValue(input.Felt)); err != nil {
			return nil, 0, err
		}
		end.Offset++
	}
	for i, bound := range []vm.Relocatable{start, end} {
		addr, err := machine.CellAddress(vm.CellRef{Register: vm.AP, Offset: int16(i)})
		if err != nil {
			return nil, 0, err
		}
		if err := machine.Memory.Insert(addr, vm.RelocatableValue(bound)); err != nil {
			return nil, 0, err
		}
	}
	return &hint.Cheatcode{
		Selector:    sel,
		InputStart:  vm.Deref{Cell: vm.CellRef{Register: vm.AP, Offset: 0}},
		InputEnd:    vm.Deref{Cell: vm.CellRef{Register: vm.AP, Offset: 1}},
		OutputStart: vm.CellRef{Register: vm.AP, Offset: 2},
		OutputEnd:   vm.CellRef{Register: vm.AP, Offset: 3},
	}, 4, nil
}
