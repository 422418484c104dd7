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

package interceptor

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/vm"
	"github.com/cockroachdb/errors"
)

// MaxDepth bounds the number of links of a chain.
const MaxDepth = 256

var (
	ErrNilLink        = errors.New("nil link in interceptor chain")
	ErrNoTerminal     = errors.New("interceptor chain does not end in a terminal link")
	ErrCyclicChain    = errors.New("link appears more than once in interceptor chain")
	ErrChainTooDeep   = errors.New("interceptor chain is too deep")
	ErrIncompleteBase = errors.New("base link requires a processor and a resource tracker")
)

// WrapFunc wraps inner into a new outermost link.
type WrapFunc func(inner Interceptor) Interceptor

// Build assembles a chain on top of processor and tracker. The first wrapper wraps the
// base link directly, the last one becomes the outermost link.
func Build(processor hint.Processor, tracker vm.ResourceTracker, wrappers ...WrapFunc) (*Dispatcher, error) {
	if processor == nil || tracker == nil {
		return nil, ErrIncompleteBase
	}
	var link Interceptor = NewBase(processor, tracker)
	for _, wrap := range wrappers {
		link = wrap(link)
	}
	return NewDispatcher(link)
}

// NewDispatcher validates the chain below outermost and returns the entry point the
// host talks to.
func NewDispatcher(outermost Interceptor) (*Dispatcher, error) {
	links, err := collect(outermost)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		outermost: outermost,
		links:     links,
	}, nil
}

// Dispatcher is the entry point of a chain. It implements the processor and resource
// tracker interfaces expected by the host and routes every call through the chain.
type Dispatcher struct {
	outermost Interceptor
	links     []Interceptor
}

// Depth returns the number of links, the terminal included.
func (d *Dispatcher) Depth() int {
	return len(d.links)
}

// Outermost returns the link every request enters the chain through.
func (d *Dispatcher) Outermost() Interceptor {
	return d.outermost
}

func (d *Dispatcher) CompileHint(code string, apTracking hint.ApTracking, referenceIds map[string]int, references []hint.Reference) (any, error) {
	return CompileHintChain(d.outermost, &CompileHintRequest{
		Code:         code,
		ApTracking:   apTracking,
		ReferenceIds: referenceIds,
		References:   references,
	})
}

func (d *Dispatcher) ExecuteHint(machine *vm.VirtualMachine, scopes *hint.ExecutionScopes, hintData any, constants map[string]felt.Felt) error {
	return ExecuteHintChain(d.outermost, &ExecuteHintRequest{
		VM:        machine,
		Scopes:    scopes,
		HintData:  hintData,
		Constants: constants,
	})
}

func (d *Dispatcher) Consumed() bool {
	return ConsumedChain(d.outermost)
}

func (d *Dispatcher) ConsumeStep() {
	ConsumeStepChain(d.outermost)
}

func (d *Dispatcher) NSteps() (uint64, bool) {
	return NStepsChain(d.outermost)
}

func (d *Dispatcher) RunResources() *vm.RunResources {
	return RunResourcesChain(d.outermost)
}

// String lists the links from the outside in.
func (d *Dispatcher) String() string {
	names := make([]string, 0, len(d.links))
	for _, link := range d.links {
		names = append(names, fmt.Sprintf("%T", link))
	}
	return strings.Join(names, " -> ")
}

func collect(link Interceptor) ([]Interceptor, error) {
	var (
		links []Interceptor
		seen  = make(map[Interceptor]struct{})
	)
	for {
		if isNil(link) {
			return nil, errors.Wrapf(ErrNilLink, "at depth %d", len(links))
		}
		if len(links) == MaxDepth {
			return nil, errors.Wrapf(ErrChainTooDeep, "more than %d links", MaxDepth)
		}
		if reflect.TypeOf(link).Comparable() {
			if _, found := seen[link]; found {
				return nil, errors.Wrapf(ErrCyclicChain, "%T at depth %d", link, len(links))
			}
			seen[link] = struct{}{}
		}
		links = append(links, link)

		child := link.Child()
		if child == nil {
			if _, ok := link.(Terminal); !ok {
				return nil, errors.Wrapf(ErrNoTerminal, "innermost link is %T", link)
			}
			return links, nil
		}
		link = child
	}
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(link Interceptor) bool {
	if link == nil {
		return true
	}
	v := reflect.ValueOf(link)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
