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

// Package hint defines the payloads exchanged between the VM and hint processors.
package hint

import (
	"fmt"

	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/vm"
)

// Hint is a compiled hint. Processors receive hints as opaque values and type-assert
// the variants they understand.
type Hint interface {
	Kind() string
}

// Cheatcode asks the test environment to perform the command named by Selector on the
// arguments stored in [InputStart, InputEnd). Results, if any, are written to
// [OutputStart, OutputEnd).
type Cheatcode struct {
	Selector    felt.Felt
	InputStart  vm.ResOperand
	InputEnd    vm.ResOperand
	OutputStart vm.CellRef
	OutputEnd   vm.CellRef
}

// Core is a hint compiled from source code by a processor.
type Core struct {
	Code         string
	ApTracking   ApTracking
	ReferenceIds map[string]int
	References   []Reference
}

// AllocSegment stores the base of a freshly allocated segment at Dst.
type AllocSegment struct {
	Dst vm.CellRef
}

// Syscall forwards the request stored at System to the host.
type Syscall struct {
	System vm.ResOperand
}

func (*Cheatcode) Kind() string    { return "cheatcode" }
func (*Core) Kind() string         { return "core" }
func (*AllocSegment) Kind() string { return "alloc_segment" }
func (*Syscall) Kind() string      { return "syscall" }

// KindOf names the payload for diagnostics.
func KindOf(data any) string {
	if h, ok := data.(Hint); ok {
		return h.Kind()
	}
	return fmt.Sprintf("%T", data)
}
