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

	"github.com/0xsoniclabs/cheatnet/vm"
)

// The functions in this file walk a chain from the given link inward. Each consults the
// capability of the current link, stops at the first link handling the request and
// falls back to the terminal once the chain is exhausted.

// CompileHintChain resolves a compilation request.
func CompileHintChain(link Interceptor, req *CompileHintRequest) (any, error) {
	for {
		if data, handled, err := link.InterceptCompileHint(req); handled {
			return data, err
		}
		child := link.Child()
		if child == nil {
			return terminalOf(link).CompileHint(req.Code, req.ApTracking, req.ReferenceIds, req.References)
		}
		link = child
	}
}

// ExecuteHintChain resolves an execution request.
func ExecuteHintChain(link Interceptor, req *ExecuteHintRequest) error {
	for {
		if handled, err := link.InterceptExecuteHint(req); handled {
			return err
		}
		child := link.Child()
		if child == nil {
			return terminalOf(link).ExecuteHint(req.VM, req.Scopes, req.HintData, req.Constants)
		}
		link = child
	}
}

// ConsumedChain reports whether the run budget is exhausted.
func ConsumedChain(link Interceptor) bool {
	for {
		if consumed, handled := link.InterceptConsumed(); handled {
			return consumed
		}
		child := link.Child()
		if child == nil {
			return terminalOf(link).Consumed()
		}
		link = child
	}
}

// ConsumeStepChain charges one step to whichever link owns the budget.
func ConsumeStepChain(link Interceptor) {
	for {
		if link.InterceptConsumeStep() {
			return
		}
		child := link.Child()
		if child == nil {
			terminalOf(link).ConsumeStep()
			return
		}
		link = child
	}
}

// NStepsChain returns the remaining number of steps, false for an unbounded budget.
func NStepsChain(link Interceptor) (uint64, bool) {
	for {
		if steps, bounded, handled := link.InterceptNSteps(); handled {
			return steps, bounded
		}
		child := link.Child()
		if child == nil {
			return terminalOf(link).NSteps()
		}
		link = child
	}
}

// RunResourcesChain gives access to the budget object.
func RunResourcesChain(link Interceptor) *vm.RunResources {
	for {
		if resources, handled := link.InterceptRunResources(); handled {
			return resources
		}
		child := link.Child()
		if child == nil {
			return terminalOf(link).RunResources()
		}
		link = child
	}
}

// terminalOf panics if the chain does not end in a terminal; NewDispatcher rejects such
// chains, so reaching this is a programming error.
func terminalOf(link Interceptor) Terminal {
	terminal, ok := link.(Terminal)
	if !ok {
		panic(fmt.Sprintf("interceptor chain ends in %T, which is not a terminal link", link))
	}
	return terminal
}
