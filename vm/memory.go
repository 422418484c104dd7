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
	"github.com/cockroachdb/errors"
)

var (
	ErrUnknownSegment      = errors.New("unknown memory segment")
	ErrUnknownMemoryCell   = errors.New("unknown memory cell")
	ErrInconsistentMemory  = errors.New("inconsistent memory assignment")
	ErrExpectedInteger     = errors.New("expected integer")
	ErrExpectedRelocatable = errors.New("expected relocatable")
)

type cell struct {
	value MaybeRelocatable
	set   bool
}

// Memory is write-once segmented memory. A cell can be assigned again only with the
// value it already holds.
type Memory struct {
	segments [][]cell
}

func NewMemory() *Memory {
	return &Memory{}
}

// AddSegment allocates a new empty segment and returns its base address.
func (m *Memory) AddSegment() Relocatable {
	m.segments = append(m.segments, nil)
	return Relocatable{Segment: len(m.segments) - 1}
}

func (m *Memory) NumSegments() int {
	return len(m.segments)
}

// SegmentSize returns one past the highest assigned offset of the segment.
func (m *Memory) SegmentSize(segment int) (uint64, error) {
	if segment < 0 || segment >= len(m.segments) {
		return 0, errors.Wrapf(ErrUnknownSegment, "segment %d", segment)
	}
	return uint64(len(m.segments[segment])), nil
}

// Insert assigns value to addr.
func (m *Memory) Insert(addr Relocatable, value MaybeRelocatable) error {
	if addr.Segment < 0 || addr.Segment >= len(m.segments) {
		return errors.Wrapf(ErrUnknownSegment, "cannot write to %v", addr)
	}
	segment := m.segments[addr.Segment]
	if addr.Offset >= uint64(len(segment)) {
		grown := make([]cell, addr.Offset+1)
		copy(grown, segment)
		segment = grown
		m.segments[addr.Segment] = segment
	}
	current := &segment[addr.Offset]
	if current.set && !current.value.Equal(value) {
		return errors.Wrapf(ErrInconsistentMemory, "cell %v holds %v, cannot write %v", addr, current.value, value)
	}
	current.value = value
	current.set = true
	return nil
}

// Get returns the value at addr.
func (m *Memory) Get(addr Relocatable) (MaybeRelocatable, error) {
	if addr.Segment < 0 || addr.Segment >= len(m.segments) {
		return MaybeRelocatable{}, errors.Wrapf(ErrUnknownSegment, "cannot read %v", addr)
	}
	segment := m.segments[addr.Segment]
	if addr.Offset >= uint64(len(segment)) || !segment[addr.Offset].set {
		return MaybeRelocatable{}, errors.Wrapf(ErrUnknownMemoryCell, "cannot read %v", addr)
	}
	return segment[addr.Offset].value, nil
}

// GetRelocatable reads an address stored at addr.
func (m *Memory) GetRelocatable(addr Relocatable) (Relocatable, error) {
	value, err := m.Get(addr)
	if err != nil {
		return Relocatable{}, err
	}
	r, ok := value.Relocatable()
	if !ok {
		return Relocatable{}, errors.Wrapf(ErrExpectedRelocatable, "cell %v holds %v", addr, value)
	}
	return r, nil
}
