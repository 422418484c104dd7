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

// Package interceptor implements a chain of responsibility on top of a hint processor.
//
// A chain consists of links, each owning the next link inward. The innermost link is a
// Terminal wrapping the real, VM-bound hint processor and resource tracker. For every
// request the links are consulted from the outside in; the first link reporting the
// request as handled provides the answer. If no link handles a request it reaches the
// terminal, which always answers.
//
// Links are not shared between chains and a chain is never modified once assembled.
// Requests are served sequentially; no link may be used from more than one goroutine.
package interceptor

import (
	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/vm"
)

//go:generate mockgen -source interceptor.go -destination interceptor_mock.go -package interceptor

// Chainable gives access to the next link inward.
type Chainable interface {
	// Child returns the link wrapped by this one, nil for the terminal link.
	Child() Interceptor
}

// HintCompilationInterceptor may take over the compilation of hint source code.
type HintCompilationInterceptor interface {
	// InterceptCompileHint returns handled=false to leave the request to the next link;
	// data and err are ignored in that case.
	InterceptCompileHint(req *CompileHintRequest) (data any, handled bool, err error)
}

// HintExecutionInterceptor may take over the execution of a hint. Implementations must
// decide whether they handle a request before touching any state of it.
type HintExecutionInterceptor interface {
	// InterceptExecuteHint returns handled=false to leave the request to the next link;
	// err is ignored in that case.
	InterceptExecuteHint(req *ExecuteHintRequest) (handled bool, err error)
}

// ResourceTrackerInterceptor may take over queries and updates of the run budget.
type ResourceTrackerInterceptor interface {
	InterceptConsumed() (consumed bool, handled bool)
	InterceptConsumeStep() (handled bool)
	InterceptNSteps() (steps uint64, bounded bool, handled bool)
	InterceptRunResources() (resources *vm.RunResources, handled bool)
}

// Interceptor is a link of the chain.
type Interceptor interface {
	Chainable
	HintCompilationInterceptor
	HintExecutionInterceptor
	ResourceTrackerInterceptor
}

// Terminal is implemented by the innermost link. It answers every request left
// unhandled by the links above it.
type Terminal interface {
	hint.Processor
	vm.ResourceTracker
}

// CompileHintRequest carries the arguments of a compilation request.
type CompileHintRequest struct {
	Code         string
	ApTracking   hint.ApTracking
	ReferenceIds map[string]int
	References   []hint.Reference
}

// ExecuteHintRequest carries the arguments of an execution request. The VM and the
// scopes are borrowed for the duration of the request only.
type ExecuteHintRequest struct {
	VM        *vm.VirtualMachine
	Scopes    *hint.ExecutionScopes
	HintData  any
	Constants map[string]felt.Felt
}
