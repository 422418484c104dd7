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

package hint

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrCannotExitMainScope = errors.New("cannot exit main scope")
	ErrVariableNotInScope  = errors.New("variable not in scope")
)

// ExecutionScopes is a stack of named-value maps that hints use to pass state between
// invocations. The bottom-most scope is the main scope and cannot be exited.
type ExecutionScopes struct {
	scopes []map[string]any
}

func NewExecutionScopes() *ExecutionScopes {
	return &ExecutionScopes{scopes: []map[string]any{{}}}
}

// EnterScope pushes a new scope initialised with the given variables.
func (s *ExecutionScopes) EnterScope(variables map[string]any) {
	scope := make(map[string]any, len(variables))
	for k, v := range variables {
		scope[k] = v
	}
	s.scopes = append(s.scopes, scope)
}

// ExitScope drops the innermost scope.
func (s *ExecutionScopes) ExitScope() error {
	if len(s.scopes) <= 1 {
		return ErrCannotExitMainScope
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	return nil
}

// Depth returns the number of scopes including the main scope.
func (s *ExecutionScopes) Depth() int {
	return len(s.scopes)
}

// Get looks name up in the innermost scope only.
func (s *ExecutionScopes) Get(name string) (any, error) {
	v, ok := s.current()[name]
	if !ok {
		return nil, errors.Wrapf(ErrVariableNotInScope, "%q", name)
	}
	return v, nil
}

// Assign sets name in the innermost scope.
func (s *ExecutionScopes) Assign(name string, value any) {
	s.current()[name] = value
}

// Delete removes name from the innermost scope.
func (s *ExecutionScopes) Delete(name string) {
	delete(s.current(), name)
}

// Variables returns a copy of the innermost scope.
func (s *ExecutionScopes) Variables() map[string]any {
	res := make(map[string]any, len(s.current()))
	for k, v := range s.current() {
		res[k] = v
	}
	return res
}

func (s *ExecutionScopes) current() map[string]any {
	return s.scopes[len(s.scopes)-1]
}
