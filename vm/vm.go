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

// Package vm contains the parts of the virtual machine hint processors interact with:
// registers, segmented memory, operand resolution and the run budget. Instruction
// decoding and stepping are not part of it; a host drives execution and invokes hint
// processors in between.
package vm

import (
	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/cockroachdb/errors"
)

const (
	ProgramSegment   = 0
	ExecutionSegment = 1
)

var ErrInvalidBuffer = errors.New("operand cannot be used as a buffer")

// VirtualMachine holds the register file and the memory of one run.
type VirtualMachine struct {
	Memory *Memory
	AP     Relocatable
	FP     Relocatable
}

// NewVirtualMachine creates a machine with a program and an execution segment and both
// registers pointing at the start of the execution segment.
func NewVirtualMachine() *VirtualMachine {
	memory := NewMemory()
	memory.AddSegment()
	execution := memory.AddSegment()
	return &VirtualMachine{
		Memory: memory,
		AP:     execution,
		FP:     execution,
	}
}

// CellAddress resolves a cell reference against the current registers.
func (vm *VirtualMachine) CellAddress(ref CellRef) (Relocatable, error) {
	base := vm.AP
	if ref.Register == FP {
		base = vm.FP
	}
	return base.Add(int64(ref.Offset))
}

// GetRelocatable reads the address stored in the referenced cell.
func (vm *VirtualMachine) GetRelocatable(ref CellRef) (Relocatable, error) {
	addr, err := vm.CellAddress(ref)
	if err != nil {
		return Relocatable{}, err
	}
	return vm.Memory.GetRelocatable(addr)
}

// ExtractRelocatable resolves a buffer operand to the address it denotes. Buffers are
// either a plain dereference or a dereference plus an immediate offset.
func (vm *VirtualMachine) ExtractRelocatable(op ResOperand) (Relocatable, error) {
	var (
		cell   CellRef
		offset int64
	)
	switch o := op.(type) {
	case Deref:
		cell = o.Cell
	case BinOp:
		imm, ok := o.B.(Immediate)
		if o.Op != Add || !ok {
			return Relocatable{}, errors.Wrapf(ErrInvalidBuffer, "%v", op)
		}
		n, ok := imm.Value.Uint64()
		if !ok || n > 1<<62 {
			return Relocatable{}, errors.Wrapf(ErrInvalidBuffer, "offset %v out of range", imm.Value)
		}
		cell, offset = o.A, int64(n)
	default:
		return Relocatable{}, errors.Wrapf(ErrInvalidBuffer, "%v", op)
	}
	base, err := vm.GetRelocatable(cell)
	if err != nil {
		return Relocatable{}, err
	}
	return base.Add(offset)
}

// GetRange reads the integers stored in [start, end). Both addresses must lie in the
// same segment and start must not exceed end. An empty range does not touch memory.
func (vm *VirtualMachine) GetRange(start, end Relocatable) ([]felt.Felt, error) {
	if start.Segment != end.Segment {
		return nil, errors.Newf("range %v..%v spans multiple segments", start, end)
	}
	if start.Offset > end.Offset {
		return nil, errors.Newf("range start %v is past its end %v", start, end)
	}
	if start.Offset == end.Offset {
		return []felt.Felt{}, nil
	}
	size, err := vm.Memory.SegmentSize(start.Segment)
	if err != nil {
		return nil, err
	}
	if end.Offset > size {
		return nil, errors.Wrapf(ErrUnknownMemoryCell, "range end %v is past the end of its segment", end)
	}
	values := make([]felt.Felt, 0, end.Offset-start.Offset)
	for addr := start; addr.Offset < end.Offset; addr.Offset++ {
		value, err := vm.Memory.Get(addr)
		if err != nil {
			return nil, err
		}
		f, ok := value.Felt()
		if !ok {
			return nil, errors.Wrapf(ErrExpectedInteger, "cell %v holds %v", addr, value)
		}
		values = append(values, f)
	}
	return values, nil
}
