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

// Package builtin provides the VM-bound hint processor that sits at the bottom of every
// interceptor chain.
package builtin

import (
	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/vm"
	"github.com/cockroachdb/errors"
)

const (
	AllocSegmentCode = "memory[ap] = segments.add()"
	EnterScopeCode   = "vm_enter_scope()"
	ExitScopeCode    = "vm_exit_scope()"
)

var (
	ErrUnknownHint           = errors.New("unknown hint")
	ErrHintAlreadyRegistered = errors.New("hint already registered")
)

// HintFunc implements one piece of hint code.
type HintFunc func(machine *vm.VirtualMachine, scopes *hint.ExecutionScopes, h *hint.Core, constants map[string]felt.Felt) error

// Processor executes hints whose code was registered with it, plus structured
// AllocSegment hints.
type Processor struct {
	hints map[string]HintFunc
	log   logger.Logger
}

// NewProcessor creates a processor knowing the default hints.
func NewProcessor(log logger.Logger) *Processor {
	p := &Processor{
		hints: make(map[string]HintFunc),
		log:   log,
	}
	p.hints[AllocSegmentCode] = allocSegmentAtAp
	p.hints[EnterScopeCode] = enterScope
	p.hints[ExitScopeCode] = exitScope
	return p
}

// Register makes code known to the processor.
func (p *Processor) Register(code string, fn HintFunc) error {
	if _, found := p.hints[code]; found {
		return errors.Wrapf(ErrHintAlreadyRegistered, "%q", code)
	}
	p.hints[code] = fn
	return nil
}

func (p *Processor) CompileHint(code string, apTracking hint.ApTracking, referenceIds map[string]int, references []hint.Reference) (any, error) {
	if _, found := p.hints[code]; !found {
		return nil, errors.Wrapf(ErrUnknownHint, "cannot compile %q", code)
	}
	return &hint.Core{
		Code:         code,
		ApTracking:   apTracking,
		ReferenceIds: referenceIds,
		References:   references,
	}, nil
}

func (p *Processor) ExecuteHint(machine *vm.VirtualMachine, scopes *hint.ExecutionScopes, hintData any, constants map[string]felt.Felt) error {
	switch h := hintData.(type) {
	case *hint.Core:
		fn, found := p.hints[h.Code]
		if !found {
			return errors.Wrapf(ErrUnknownHint, "cannot execute %q", h.Code)
		}
		p.log.Debugf("executing hint %q", h.Code)
		return fn(machine, scopes, h, constants)
	case *hint.AllocSegment:
		return allocSegment(machine, h.Dst)
	default:
		return errors.Wrapf(ErrUnknownHint, "cannot execute %s hint", hint.KindOf(hintData))
	}
}

func allocSegment(machine *vm.VirtualMachine, dst vm.CellRef) error {
	addr, err := machine.CellAddress(dst)
	if err != nil {
		return err
	}
	if value, err := machine.Memory.Get(addr); err == nil {
		return errors.Wrapf(vm.ErrInconsistentMemory, "cell %v already holds %v", addr, value)
	} else if !errors.Is(err, vm.ErrUnknownMemoryCell) {
		return err
	}
	base := machine.Memory.AddSegment()
	return machine.Memory.Insert(addr, vm.RelocatableValue(base))
}

func allocSegmentAtAp(machine *vm.VirtualMachine, _ *hint.ExecutionScopes, _ *hint.Core, _ map[string]felt.Felt) error {
	return allocSegment(machine, vm.CellRef{Register: vm.AP})
}

func enterScope(_ *vm.VirtualMachine, scopes *hint.ExecutionScopes, _ *hint.Core, _ map[string]felt.Felt) error {
	scopes.EnterScope(nil)
	return nil
}

func exitScope(_ *vm.VirtualMachine, scopes *hint.ExecutionScopes, _ *hint.Core, _ map[string]felt.Felt) error {
	return scopes.ExitScope()
}
