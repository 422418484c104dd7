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

package hint

import (
	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/vm"
)

// ApTracking identifies the ap-change group a hint was compiled in.
type ApTracking struct {
	Group  int
	Offset int
}

// Reference describes a variable visible to a hint's source code.
type Reference struct {
	Offset1        vm.ResOperand
	Offset2        vm.ResOperand
	Dereference    bool
	ApTrackingData ApTracking
	CairoType      string
}

//go:generate mockgen -source processor.go -destination processor_mock.go -package hint

// Processor compiles and executes hints on behalf of the VM.
type Processor interface {
	// CompileHint turns hint source code into a payload the processor can execute later.
	CompileHint(code string, apTracking ApTracking, referenceIds map[string]int, references []Reference) (any, error)
	// ExecuteHint runs a payload previously returned by CompileHint or produced by the
	// compiler directly.
	ExecuteHint(machine *vm.VirtualMachine, scopes *ExecutionScopes, hintData any, constants map[string]felt.Felt) error
}
