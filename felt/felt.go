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

// Package felt provides the field element type of the VM. Only representation and
// conversion are offered; arithmetic over the field is left to the VM itself.
package felt

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"
)

// Prime is the modulus of the field, 2^251 + 17*2^192 + 1.
var Prime = *uint256.MustFromHex("0x800000000000011000000000000000000000000000000000000000000000001")

// Felt is a field element held in its canonical representative in [0, Prime).
type Felt struct {
	v uint256.Int
}

// Zero returns the zero element.
func Zero() Felt {
	return Felt{}
}

// FromUint64 converts n into a field element.
func FromUint64(n uint64) Felt {
	var f Felt
	f.v.SetUint64(n)
	return f
}

// FromUint256 reduces v modulo Prime.
func FromUint256(v *uint256.Int) Felt {
	var f Felt
	f.v.Set(v)
	f.reduce()
	return f
}

// FromBytesBE interprets b as a big-endian unsigned integer and reduces it modulo
// Prime. Only the last 32 bytes of longer inputs are taken into account.
func FromBytesBE(b []byte) Felt {
	var f Felt
	f.v.SetBytes(b)
	f.reduce()
	return f
}

// Parse accepts a 0x-prefixed hexadecimal or a plain decimal number.
func Parse(s string) (Felt, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Felt{}, errors.New("cannot parse empty string as field element")
	}
	var (
		v   *uint256.Int
		err error
	)
	if digits, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		digits = strings.TrimLeft(digits, "0")
		if digits == "" {
			digits = "0"
		}
		v, err = uint256.FromHex("0x" + digits)
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return Felt{}, errors.Wrapf(err, "cannot parse %q as field element", s)
	}
	return FromUint256(v), nil
}

// MustParse is like Parse but panics on malformed input. Intended for constants and tests.
func MustParse(s string) Felt {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Felt) reduce() {
	if f.v.Cmp(&Prime) >= 0 {
		f.v.Mod(&f.v, &Prime)
	}
}

// SignificantBytes returns the big-endian representation without leading zero bytes.
// The zero element yields an empty slice.
func (f Felt) SignificantBytes() []byte {
	return f.v.Bytes()
}

// Bytes32 returns the 32 byte big-endian representation.
func (f Felt) Bytes32() [32]byte {
	return f.v.Bytes32()
}

// Uint64 returns the value as uint64 if it fits.
func (f Felt) Uint64() (uint64, bool) {
	if !f.v.IsUint64() {
		return 0, false
	}
	return f.v.Uint64(), true
}

func (f Felt) IsZero() bool {
	return f.v.IsZero()
}

func (f Felt) Equal(other Felt) bool {
	return f.v.Eq(&other.v)
}

func (f Felt) Cmp(other Felt) int {
	return f.v.Cmp(&other.v)
}

// String renders the value in decimal.
func (f Felt) String() string {
	return f.v.Dec()
}

// Hex renders the value as 0x-prefixed hexadecimal.
func (f Felt) Hex() string {
	return f.v.Hex()
}
