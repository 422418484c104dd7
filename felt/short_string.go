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

package felt

import (
	"github.com/cockroachdb/errors"
)

// MaxShortStringLength is the number of ASCII characters that fit into one element.
const MaxShortStringLength = 31

// ErrInvalidShortString is returned for strings that cannot be packed into one element.
var ErrInvalidShortString = errors.New("invalid short string")

// FromShortString packs an ASCII string of at most MaxShortStringLength characters
// into a field element, first character in the most significant byte.
func FromShortString(s string) (Felt, error) {
	if len(s) > MaxShortStringLength {
		return Felt{}, errors.Wrapf(ErrInvalidShortString, "%q is longer than %d characters", s, MaxShortStringLength)
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return Felt{}, errors.Wrapf(ErrInvalidShortString, "%q contains non-ASCII byte at position %d", s, i)
		}
	}
	return FromBytesBE([]byte(s)), nil
}

// AsShortString decodes a packed short string. Decoding succeeds only if every
// significant byte is a printable ASCII character or ASCII whitespace; zero bytes are
// tolerated only as trailing padding after the text.
func AsShortString(f Felt) (string, bool) {
	var (
		buf   = make([]byte, 0, MaxShortStringLength)
		ended bool
	)
	for _, b := range f.SignificantBytes() {
		switch {
		case b == 0:
			ended = true
		case ended:
			return "", false
		case isASCIIGraphic(b) || isASCIIWhitespace(b):
			buf = append(buf, b)
		default:
			return "", false
		}
	}
	return string(buf), true
}

func isASCIIGraphic(b byte) bool {
	return b >= '!' && b <= '~'
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
