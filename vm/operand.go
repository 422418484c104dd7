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

package vm

import (
	"fmt"

	"github.com/0xsoniclabs/cheatnet/felt"
)

// Register names one of the two base registers operands are relative to.
type Register byte

const (
	AP Register = iota
	FP
)

func (r Register) String() string {
	switch r {
	case AP:
		return "ap"
	case FP:
		return "fp"
	default:
		return fmt.Sprintf("Register(%d)", byte(r))
	}
}

// CellRef addresses the cell at a register plus a signed offset.
type CellRef struct {
	Register Register
	Offset   int16
}

func (c CellRef) String() string {
	return fmt.Sprintf("[%v%+d]", c.Register, c.Offset)
}

// Operation is the arithmetic operator of a BinOp operand.
type Operation byte

const (
	Add Operation = iota
	Mul
)

func (o Operation) String() string {
	if o == Mul {
		return "*"
	}
	return "+"
}

// ResOperand describes how a hint argument is computed from registers and memory.
// The set of implementations is closed: Deref, DoubleDeref, Immediate and BinOp.
type ResOperand interface {
	fmt.Stringer
	isResOperand()
}

// DerefOrImmediate is the right-hand side of a BinOp.
type DerefOrImmediate interface {
	ResOperand
	isDerefOrImmediate()
}

// Deref is the value stored at Cell.
type Deref struct {
	Cell CellRef
}

// DoubleDeref is the value stored at [[Cell] + Offset].
type DoubleDeref struct {
	Cell   CellRef
	Offset int16
}

// Immediate is a constant.
type Immediate struct {
	Value felt.Felt
}

// BinOp applies Op to the value at A and B.
type BinOp struct {
	Op Operation
	A  CellRef
	B  DerefOrImmediate
}

func (Deref) isResOperand()       {}
func (DoubleDeref) isResOperand() {}
func (Immediate) isResOperand()   {}
func (BinOp) isResOperand()       {}

func (Deref) isDerefOrImmediate()     {}
func (Immediate) isDerefOrImmediate() {}

func (d Deref) String() string       { return d.Cell.String() }
func (d DoubleDeref) String() string { return fmt.Sprintf("[%v%+d]", d.Cell, d.Offset) }
func (i Immediate) String() string   { return i.Value.String() }
func (b BinOp) String() string       { return fmt.Sprintf("%v %v %v", b.A, b.Op, b.B) }
