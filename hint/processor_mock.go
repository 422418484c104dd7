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

// Package hint is a generated GoMock package.
package hint

import (
	reflect "reflect"

	felt "github.com/0xsoniclabs/cheatnet/felt"
	vm "github.com/0xsoniclabs/cheatnet/vm"
	gomock "go.uber.org/mock/gomock"
)

// MockProcessor is a mock of Processor interface.
type MockProcessor struct {
	ctrl     *gomock.Controller
	recorder *MockProcessorMockRecorder
	isgomock struct{}
}

// MockProcessorMockRecorder is the mock recorder for MockProcessor.
type MockProcessorMockRecorder struct {
	mock *MockProcessor
}

// NewMockProcessor creates a new mock instance.
func NewMockProcessor(ctrl *gomock.Controller) *MockProcessor {
	mock := &MockProcessor{ctrl: ctrl}
	mock.recorder = &MockProcessorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProcessor) EXPECT() *MockProcessorMockRecorder {
	return m.recorder
}

// CompileHint mocks base method.
func (m *MockProcessor) CompileHint(code string, apTracking ApTracking, referenceIds map[string]int, references []Reference) (any, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompileHint", code, apTracking, referenceIds, references)
	ret0, _ := ret[0].(any)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompileHint indicates an expected call of CompileHint.
func (mr *MockProcessorMockRecorder) CompileHint(code any, apTracking any, referenceIds any, references any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompileHint", reflect.TypeOf((*MockProcessor)(nil).CompileHint), code, apTracking, referenceIds, references)
}

// ExecuteHint mocks base method.
func (m *MockProcessor) ExecuteHint(machine *vm.VirtualMachine, scopes *ExecutionScopes, hintData any, constants map[string]felt.Felt) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteHint", machine, scopes, hintData, constants)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExecuteHint indicates an expected call of ExecuteHint.
func (mr *MockProcessorMockRecorder) ExecuteHint(machine any, scopes any, hintData any, constants any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteHint", reflect.TypeOf((*MockProcessor)(nil).ExecuteHint), machine, scopes, hintData, constants)
}
