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

// Package interceptor is a generated GoMock package.
package interceptor

import (
	reflect "reflect"

	felt "github.com/0xsoniclabs/cheatnet/felt"
	hint "github.com/0xsoniclabs/cheatnet/hint"
	vm "github.com/0xsoniclabs/cheatnet/vm"
	gomock "go.uber.org/mock/gomock"
)

// MockChainable is a mock of Chainable interface.
type MockChainable struct {
	ctrl     *gomock.Controller
	recorder *MockChainableMockRecorder
	isgomock struct{}
}

// MockChainableMockRecorder is the mock recorder for MockChainable.
type MockChainableMockRecorder struct {
	mock *MockChainable
}

// NewMockChainable creates a new mock instance.
func NewMockChainable(ctrl *gomock.Controller) *MockChainable {
	mock := &MockChainable{ctrl: ctrl}
	mock.recorder = &MockChainableMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChainable) EXPECT() *MockChainableMockRecorder {
	return m.recorder
}

// Child mocks base method.
func (m *MockChainable) Child() Interceptor {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Child")
	ret0, _ := ret[0].(Interceptor)
	return ret0
}

// Child indicates an expected call of Child.
func (mr *MockChainableMockRecorder) Child() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Child", reflect.TypeOf((*MockChainable)(nil).Child))
}

// MockHintCompilationInterceptor is a mock of HintCompilationInterceptor interface.
type MockHintCompilationInterceptor struct {
	ctrl     *gomock.Controller
	recorder *MockHintCompilationInterceptorMockRecorder
	isgomock struct{}
}

// MockHintCompilationInterceptorMockRecorder is the mock recorder for MockHintCompilationInterceptor.
type MockHintCompilationInterceptorMockRecorder struct {
	mock *MockHintCompilationInterceptor
}

// NewMockHintCompilationInterceptor creates a new mock instance.
func NewMockHintCompilationInterceptor(ctrl *gomock.Controller) *MockHintCompilationInterceptor {
	mock := &MockHintCompilationInterceptor{ctrl: ctrl}
	mock.recorder = &MockHintCompilationInterceptorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHintCompilationInterceptor) EXPECT() *MockHintCompilationInterceptorMockRecorder {
	return m.recorder
}

// InterceptCompileHint mocks base method.
func (m *MockHintCompilationInterceptor) InterceptCompileHint(req *CompileHintRequest) (any, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptCompileHint", req)
	ret0, _ := ret[0].(any)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// InterceptCompileHint indicates an expected call of InterceptCompileHint.
func (mr *MockHintCompilationInterceptorMockRecorder) InterceptCompileHint(req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptCompileHint", reflect.TypeOf((*MockHintCompilationInterceptor)(nil).InterceptCompileHint), req)
}

// MockHintExecutionInterceptor is a mock of HintExecutionInterceptor interface.
type MockHintExecutionInterceptor struct {
	ctrl     *gomock.Controller
	recorder *MockHintExecutionInterceptorMockRecorder
	isgomock struct{}
}

// MockHintExecutionInterceptorMockRecorder is the mock recorder for MockHintExecutionInterceptor.
type MockHintExecutionInterceptorMockRecorder struct {
	mock *MockHintExecutionInterceptor
}

// NewMockHintExecutionInterceptor creates a new mock instance.
func NewMockHintExecutionInterceptor(ctrl *gomock.Controller) *MockHintExecutionInterceptor {
	mock := &MockHintExecutionInterceptor{ctrl: ctrl}
	mock.recorder = &MockHintExecutionInterceptorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHintExecutionInterceptor) EXPECT() *MockHintExecutionInterceptorMockRecorder {
	return m.recorder
}

// InterceptExecuteHint mocks base method.
func (m *MockHintExecutionInterceptor) InterceptExecuteHint(req *ExecuteHintRequest) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptExecuteHint", req)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InterceptExecuteHint indicates an expected call of InterceptExecuteHint.
func (mr *MockHintExecutionInterceptorMockRecorder) InterceptExecuteHint(req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptExecuteHint", reflect.TypeOf((*MockHintExecutionInterceptor)(nil).InterceptExecuteHint), req)
}

// MockResourceTrackerInterceptor is a mock of ResourceTrackerInterceptor interface.
type MockResourceTrackerInterceptor struct {
	ctrl     *gomock.Controller
	recorder *MockResourceTrackerInterceptorMockRecorder
	isgomock struct{}
}

// MockResourceTrackerInterceptorMockRecorder is the mock recorder for MockResourceTrackerInterceptor.
type MockResourceTrackerInterceptorMockRecorder struct {
	mock *MockResourceTrackerInterceptor
}

// NewMockResourceTrackerInterceptor creates a new mock instance.
func NewMockResourceTrackerInterceptor(ctrl *gomock.Controller) *MockResourceTrackerInterceptor {
	mock := &MockResourceTrackerInterceptor{ctrl: ctrl}
	mock.recorder = &MockResourceTrackerInterceptorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceTrackerInterceptor) EXPECT() *MockResourceTrackerInterceptorMockRecorder {
	return m.recorder
}

// InterceptConsumeStep mocks base method.
func (m *MockResourceTrackerInterceptor) InterceptConsumeStep() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptConsumeStep")
	ret0, _ := ret[0].(bool)
	return ret0
}

// InterceptConsumeStep indicates an expected call of InterceptConsumeStep.
func (mr *MockResourceTrackerInterceptorMockRecorder) InterceptConsumeStep() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptConsumeStep", reflect.TypeOf((*MockResourceTrackerInterceptor)(nil).InterceptConsumeStep))
}

// InterceptConsumed mocks base method.
func (m *MockResourceTrackerInterceptor) InterceptConsumed() (bool, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptConsumed")
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// InterceptConsumed indicates an expected call of InterceptConsumed.
func (mr *MockResourceTrackerInterceptorMockRecorder) InterceptConsumed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptConsumed", reflect.TypeOf((*MockResourceTrackerInterceptor)(nil).InterceptConsumed))
}

// InterceptNSteps mocks base method.
func (m *MockResourceTrackerInterceptor) InterceptNSteps() (uint64, bool, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptNSteps")
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(bool)
	return ret0, ret1, ret2
}

// InterceptNSteps indicates an expected call of InterceptNSteps.
func (mr *MockResourceTrackerInterceptorMockRecorder) InterceptNSteps() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptNSteps", reflect.TypeOf((*MockResourceTrackerInterceptor)(nil).InterceptNSteps))
}

// InterceptRunResources mocks base method.
func (m *MockResourceTrackerInterceptor) InterceptRunResources() (*vm.RunResources, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptRunResources")
	ret0, _ := ret[0].(*vm.RunResources)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// InterceptRunResources indicates an expected call of InterceptRunResources.
func (mr *MockResourceTrackerInterceptorMockRecorder) InterceptRunResources() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptRunResources", reflect.TypeOf((*MockResourceTrackerInterceptor)(nil).InterceptRunResources))
}

// MockInterceptor is a mock of Interceptor interface.
type MockInterceptor struct {
	ctrl     *gomock.Controller
	recorder *MockInterceptorMockRecorder
	isgomock struct{}
}

// MockInterceptorMockRecorder is the mock recorder for MockInterceptor.
type MockInterceptorMockRecorder struct {
	mock *MockInterceptor
}

// NewMockInterceptor creates a new mock instance.
func NewMockInterceptor(ctrl *gomock.Controller) *MockInterceptor {
	mock := &MockInterceptor{ctrl: ctrl}
	mock.recorder = &MockInterceptorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInterceptor) EXPECT() *MockInterceptorMockRecorder {
	return m.recorder
}

// Child mocks base method.
func (m *MockInterceptor) Child() Interceptor {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Child")
	ret0, _ := ret[0].(Interceptor)
	return ret0
}

// Child indicates an expected call of Child.
func (mr *MockInterceptorMockRecorder) Child() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Child", reflect.TypeOf((*MockInterceptor)(nil).Child))
}

// InterceptCompileHint mocks base method.
func (m *MockInterceptor) InterceptCompileHint(req *CompileHintRequest) (any, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptCompileHint", req)
	ret0, _ := ret[0].(any)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// InterceptCompileHint indicates an expected call of InterceptCompileHint.
func (mr *MockInterceptorMockRecorder) InterceptCompileHint(req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptCompileHint", reflect.TypeOf((*MockInterceptor)(nil).InterceptCompileHint), req)
}

// InterceptConsumeStep mocks base method.
func (m *MockInterceptor) InterceptConsumeStep() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptConsumeStep")
	ret0, _ := ret[0].(bool)
	return ret0
}

// InterceptConsumeStep indicates an expected call of InterceptConsumeStep.
func (mr *MockInterceptorMockRecorder) InterceptConsumeStep() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptConsumeStep", reflect.TypeOf((*MockInterceptor)(nil).InterceptConsumeStep))
}

// InterceptConsumed mocks base method.
func (m *MockInterceptor) InterceptConsumed() (bool, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptConsumed")
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// InterceptConsumed indicates an expected call of InterceptConsumed.
func (mr *MockInterceptorMockRecorder) InterceptConsumed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptConsumed", reflect.TypeOf((*MockInterceptor)(nil).InterceptConsumed))
}

// InterceptExecuteHint mocks base method.
func (m *MockInterceptor) InterceptExecuteHint(req *ExecuteHintRequest) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptExecuteHint", req)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InterceptExecuteHint indicates an expected call of InterceptExecuteHint.
func (mr *MockInterceptorMockRecorder) InterceptExecuteHint(req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptExecuteHint", reflect.TypeOf((*MockInterceptor)(nil).InterceptExecuteHint), req)
}

// InterceptNSteps mocks base method.
func (m *MockInterceptor) InterceptNSteps() (uint64, bool, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptNSteps")
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(bool)
	return ret0, ret1, ret2
}

// InterceptNSteps indicates an expected call of InterceptNSteps.
func (mr *MockInterceptorMockRecorder) InterceptNSteps() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptNSteps", reflect.TypeOf((*MockInterceptor)(nil).InterceptNSteps))
}

// InterceptRunResources mocks base method.
func (m *MockInterceptor) InterceptRunResources() (*vm.RunResources, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InterceptRunResources")
	ret0, _ := ret[0].(*vm.RunResources)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// InterceptRunResources indicates an expected call of InterceptRunResources.
func (mr *MockInterceptorMockRecorder) InterceptRunResources() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InterceptRunResources", reflect.TypeOf((*MockInterceptor)(nil).InterceptRunResources))
}

// MockTerminal is a mock of Terminal interface.
type MockTerminal struct {
	ctrl     *gomock.Controller
	recorder *MockTerminalMockRecorder
	isgomock struct{}
}

// MockTerminalMockRecorder is the mock recorder for MockTerminal.
type MockTerminalMockRecorder struct {
	mock *MockTerminal
}

// NewMockTerminal creates a new mock instance.
func NewMockTerminal(ctrl *gomock.Controller) *MockTerminal {
	mock := &MockTerminal{ctrl: ctrl}
	mock.recorder = &MockTerminalMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTerminal) EXPECT() *MockTerminalMockRecorder {
	return m.recorder
}

// CompileHint mocks base method.
func (m *MockTerminal) CompileHint(code string, apTracking hint.ApTracking, referenceIds map[string]int, references []hint.Reference) (any, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompileHint", code, apTracking, referenceIds, references)
	ret0, _ := ret[0].(any)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompileHint indicates an expected call of CompileHint.
func (mr *MockTerminalMockRecorder) CompileHint(code any, apTracking any, referenceIds any, references any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompileHint", reflect.TypeOf((*MockTerminal)(nil).CompileHint), code, apTracking, referenceIds, references)
}

// ConsumeStep mocks base method.
func (m *MockTerminal) ConsumeStep() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ConsumeStep")
}

// ConsumeStep indicates an expected call of ConsumeStep.
func (mr *MockTerminalMockRecorder) ConsumeStep() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConsumeStep", reflect.TypeOf((*MockTerminal)(nil).ConsumeStep))
}

// Consumed mocks base method.
func (m *MockTerminal) Consumed() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consumed")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Consumed indicates an expected call of Consumed.
func (mr *MockTerminalMockRecorder) Consumed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consumed", reflect.TypeOf((*MockTerminal)(nil).Consumed))
}

// ExecuteHint mocks base method.
func (m *MockTerminal) ExecuteHint(machine *vm.VirtualMachine, scopes *hint.ExecutionScopes, hintData any, constants map[string]felt.Felt) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteHint", machine, scopes, hintData, constants)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExecuteHint indicates an expected call of ExecuteHint.
func (mr *MockTerminalMockRecorder) ExecuteHint(machine any, scopes any, hintData any, constants any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteHint", reflect.TypeOf((*MockTerminal)(nil).ExecuteHint), machine, scopes, hintData, constants)
}

// NSteps mocks base method.
func (m *MockTerminal) NSteps() (uint64, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NSteps")
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// NSteps indicates an expected call of NSteps.
func (mr *MockTerminalMockRecorder) NSteps() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NSteps", reflect.TypeOf((*MockTerminal)(nil).NSteps))
}

// RunResources mocks base method.
func (m *MockTerminal) RunResources() *vm.RunResources {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RunResources")
	ret0, _ := ret[0].(*vm.RunResources)
	return ret0
}

// RunResources indicates an expected call of RunResources.
func (mr *MockTerminalMockRecorder) RunResources() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunResources", reflect.TypeOf((*MockTerminal)(nil).RunResources))
}
