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
	"os"
	"regexp"
	"strings"

	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a sequence of hints executed on a fresh machine.
type Scenario struct {
	// StepLimit bounds the number of hints executed; 0 means unlimited.
	StepLimit uint64 `yaml:"step_limit"`
	Steps     []Step `yaml:"steps"`
}

// Step executes exactly one hint. Print is a shorthand for a print cheatcode.
type Step struct {
	Print        []Value        `yaml:"print,omitempty"`
	Cheatcode    *CheatcodeStep `yaml:"cheatcode,omitempty"`
	Code         string         `yaml:"code,omitempty"`
	AllocSegment bool           `yaml:"alloc_segment,omitempty"`
}

type CheatcodeStep struct {
	Selector string  `yaml:"selector"`
	Inputs   []Value `yaml:"inputs"`
}

// Value is a field element in a scenario. Unquoted decimal and 0x-prefixed hex literals,
// optionally grouped with underscores, are taken as numbers. Everything else is packed
// as a short string.
type Value struct {
	felt.Felt
}

var numberLiteral = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+(_[0-9a-fA-F]+)*|[0-9]+(_[0-9]+)*)$`)

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: expected a scalar value", node.Line)
	}
	var (
		f   felt.Felt
		err error
	)
	if isNumber(node) {
		f, err = felt.Parse(strings.ReplaceAll(node.Value, "_", ""))
	} else {
		f, err = felt.FromShortString(node.Value)
	}
	if err != nil {
		return errors.Wrapf(err, "line %d: value %q", node.Line, node.Value)
	}
	v.Felt = f
	return nil
}

// isNumber ignores the resolved YAML tag, so literals too large for the YAML integer
// types are numbers as well.
func isNumber(node *yaml.Node) bool {
	if node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
		return false
	}
	return numberLiteral.MatchString(node.Value)
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read scenario %s", filename)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", filename)
	}
	return s, nil
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Mark(err, ErrInvalidScenario)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
	}
	return &s, nil
}

func (s Step) validate() error {
	kinds := 0
	if s.Print != nil {
		kinds++
	}
	if s.Cheatcode != nil {
		kinds++
		if _, err := felt.FromShortString(s.Cheatcode.Selector); err != nil {
			return errors.Mark(errors.Wrap(err, "selector"), ErrInvalidScenario)
		}
	}
	if s.Code != "" {
		kinds++
	}
	if s.AllocSegment {
		kinds++
	}
	if kinds != 1 {
		return errors.Wrapf(ErrInvalidScenario, "a step needs exactly one of print, cheatcode, code and alloc_segment, found %d", kinds)
	}
	return nil
}
