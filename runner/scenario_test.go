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

package runner

import (
	"testing"

	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ReadsFile(t *testing.T) {
	s, err := LoadScenario("testdata/hello.yaml")
	require.NoError(t, err)

	assert.Equal(t, uint64(10), s.StepLimit)
	require.Len(t, s.Steps, 6)
	assert.Equal(t, []Value{{felt.MustParse("0x48656c6c6f")}, {felt.FromUint64(42)}}, s.Steps[0].Print)
	assert.Equal(t, "print", s.Steps[1].Cheatcode.Selector)
	assert.Equal(t, []Value{{felt.MustParse("310939249775")}}, s.Steps[1].Cheatcode.Inputs)
	assert.Equal(t, "vm_enter_scope()", s.Steps[2].Code)
	assert.True(t, s.Steps[3].AllocSegment)
	assert.NotNil(t, s.Steps[5].Print)
	assert.Empty(t, s.Steps[5].Print)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/missing.yaml")
	assert.ErrorContains(t, err, "cannot read scenario")
}

func TestParseScenario_Values(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  felt.Felt
	}{
		{name: "decimal", value: "1234", want: felt.FromUint64(1234)},
		{name: "hex", value: "0xff", want: felt.FromUint64(255)},
		{name: "underscores", value: "1_000", want: felt.FromUint64(1000)},
		{name: "large decimal", value: "340282366920938463463374607431768211456", want: felt.MustParse("0x100000000000000000000000000000000")},
		{name: "large hex", value: "0x100000000000000000000000000000000", want: felt.MustParse("0x100000000000000000000000000000000")},
		{name: "short string", value: "abc", want: felt.FromUint64(0x616263)},
		{name: "quoted number", value: `"42"`, want: felt.FromUint64(0x3432)},
		{name: "empty string", value: `""`, want: felt.Zero()},
		{name: "starts with digit", value: "1st", want: felt.FromUint64(0x317374)},
		{name: "binary literal", value: "0b101", want: felt.FromUint64(0x3062313031)},
		{name: "octal literal", value: "0o17", want: felt.FromUint64(0x306f3137)},
		{name: "digits and underscore", value: "2nd_place", want: felt.MustParse("0x326e645f706c616365")},
		{name: "hex with underscores", value: "0xff_ff", want: felt.FromUint64(0xffff)},
		{name: "float", value: "1.5", want: felt.FromUint64(0x312e35)},
		{name: "negative", value: "-5", want: felt.FromUint64(0x2d35)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := ParseScenario([]byte("steps:\n  - print: [" + test.value + "]\n"))
			require.NoError(t, err)
			require.Len(t, s.Steps, 1)
			require.Len(t, s.Steps[0].Print, 1)
			assert.True(t, test.want.Equal(s.Steps[0].Print[0].Felt), "got %v", s.Steps[0].Print[0].Felt)
		})
	}
}

func TestParseScenario_Rejects(t *testing.T) {
	tests := map[string]string{
		"malformed yaml":    "steps: [",
		"empty step":        "steps:\n  - {}\n",
		"two kinds":         "steps:\n  - code: vm_enter_scope()\n    alloc_segment: true\n",
		"long selector":     "steps:\n  - cheatcode:\n      selector: abcdefghijklmnopqrstuvwxyz0123456789\n",
		"non scalar value":  "steps:\n  - print: [[1]]\n",
		"number too large":  "steps:\n  - print: [0x10000000000000000000000000000000000000000000000000000000000000000]\n",
		"long string value": "steps:\n  - print: [abcdefghijklmnopqrstuvwxyz0123456789]\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScenario([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParseScenario_ErrorNamesOriginalValue(t *testing.T) {
	_, err := ParseScenario([]byte("steps:\n  - print: [1_000_00000000000000000000000000000000000000000000000000000000000000000000000000000000]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"1_000_00000000000000000000000000000000000000000000000000000000000000000000000000000000"`)
}

func TestParseScenario_InvalidStepsAreMarked(t *testing.T) {
	_, err := ParseScenario([]byte("steps:\n  - {}\n"))
	assert.ErrorIs(t, err, ErrInvalidScenario)
}
