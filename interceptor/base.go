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

package interceptor

import (
	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/vm"
)

// NewBase creates the terminal link owning the given processor and resource tracker.
func NewBase(processor hint.Processor, tracker vm.ResourceTracker) *Base {
	return &Base{
		processor: processor,
		tracker:   tracker,
	}
}

// Base is the innermost link. It intercepts nothing; every request reaching it is
// answered by the wrapped processor and tracker.
type Base struct {
	NilInterceptor
	processor hint.Processor
	tracker   vm.ResourceTracker
}

func (b *Base) Child() Interceptor {
	return nil
}

func (b *Base) CompileHint(code string, apTracking hint.ApTracking, referenceIds map[string]int, references []hint.Reference) (any, error) {
	return b.processor.CompileHint(code, apTracking, referenceIds, references)
}

func (b *Base) ExecuteHint(machine *vm.VirtualMachine, scopes *hint.ExecutionScopes, hintData any, constants map[string]felt.Felt) error {
	return b.processor.ExecuteHint(machine, scopes, hintData, constants)
}

func (b *Base) Consumed() bool {
	return b.tracker.Consumed()
}

func (b *Base) ConsumeStep() {
	b.tracker.ConsumeStep()
}

func (b *Base) NSteps() (uint64, bool) {
	return b.tracker.NSteps()
}

func (b *Base) RunResources() *vm.RunResources {
	return b.tracker.RunResources()
}
