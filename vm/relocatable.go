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
	"github.com/cockroachdb/errors"
)

// Relocatable is an address in segmented memory.
type Relocatable struct {
	Segment int
	Offset  uint64
}

// Add moves the address by delta cells within its segment.
func (r Relocatable) Add(delta int64) (Relocatable, error) {
	if delta < 0 && uint64(-delta) > r.Offset {
		return Relocatable{}, errors.Newf("offset underflow: %v%+d", r, delta)
	}
	return Relocatable{Segment: r.Segment, Offset: uint64(int64(r.Offset) + delta)}, nil
}

func (r Relocatable) String() string {
	return fmt.Sprintf("%d:%d", r.Segment, r.Offset)
}

// MaybeRelocatable is the content of a memory cell: either a field element or an address.
type MaybeRelocatable struct {
	value         felt.Felt
	address       Relocatable
	isRelocatable bool
}

func FeltValue(f felt.Felt) MaybeRelocatable {
	return MaybeRelocatable{value: f}
}

func RelocatableValue(r Relocatable) MaybeRelocatable {
	return MaybeRelocatable{address: r, isRelocatable: true}
}

// Felt returns the field element stored in the cell, false if it holds an address.
func (m MaybeRelocatable) Felt() (felt.Felt, bool) {
	if m.isRelocatable {
		return felt.Felt{}, false
	}
	return m.value, true
}

// Relocatable returns the address stored in the cell, false if it holds a field element.
func (m MaybeRelocatable) Relocatable() (Relocatable, bool) {
	if !m.isRelocatable {
		return Relocatable{}, false
	}
	return m.address, true
}

func (m MaybeRelocatable) Equal(other MaybeRelocatable) bool {
	if m.isRelocatable != other.isRelocatable {
		return false
	}
	if m.isRelocatable {
		return m.address == other.address
	}
	return m.value.Equal(other.value)
}

func (m MaybeRelocatable) String() string {
	if m.isRelocatable {
		return m.address.String()
	}
	return m.value.String()
}
