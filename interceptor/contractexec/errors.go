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

package contractexec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMemoryRead reports that the input range of a cheatcode could not be read.
	ErrMemoryRead = errors.New("failed to read input data")
	// ErrUnsupportedCheatcode reports a cheatcode that is not available in contracts.
	ErrUnsupportedCheatcode = errors.New("only `print` cheatcode is available in contracts")
	// ErrMalformedSelector reports a selector whose bytes are not valid text.
	ErrMalformedSelector = errors.New("malformed cheatcode selector")
)

// MemoryReadError wraps the VM error encountered while reading cheatcode inputs.
type MemoryReadError struct {
	cause error
}

func NewMemoryReadError(cause error) *MemoryReadError {
	return &MemoryReadError{cause: cause}
}

func (e *MemoryReadError) Error() string {
	return fmt.Sprintf("%v; %v", ErrMemoryRead, e.cause)
}

func (e *MemoryReadError) Unwrap() error {
	return e.cause
}

func (e *MemoryReadError) Is(target error) bool {
	return target == ErrMemoryRead
}

// UnsupportedCheatcodeError names the rejected selector.
type UnsupportedCheatcodeError struct {
	Selector string
}

func NewUnsupportedCheatcodeError(selector string) *UnsupportedCheatcodeError {
	return &UnsupportedCheatcodeError{Selector: selector}
}

func (e *UnsupportedCheatcodeError) Error() string {
	return fmt.Sprintf("cheatcode %q rejected; %v", e.Selector, ErrUnsupportedCheatcode)
}

func (e *UnsupportedCheatcodeError) Is(target error) bool {
	return target == ErrUnsupportedCheatcode
}

// MalformedSelectorError carries the raw selector bytes.
type MalformedSelectorError struct {
	Bytes []byte
}

func NewMalformedSelectorError(b []byte) *MalformedSelectorError {
	return &MalformedSelectorError{Bytes: b}
}

func (e *MalformedSelectorError) Error() string {
	return fmt.Sprintf("%v: %#x", ErrMalformedSelector, e.Bytes)
}

func (e *MalformedSelectorError) Is(target error) bool {
	return target == ErrMalformedSelector
}
