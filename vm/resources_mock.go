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

// Package vm is a generated GoMock package.
package vm

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockResourceTracker is a mock of ResourceTracker interface.
type MockResourceTracker struct {
	ctrl     *gomock.Controller
	recorder *MockResourceTrackerMockRecorder
	isgomock struct{}
}

// MockResourceTrackerMockRecorder is the mock recorder for MockResourceTracker.
type MockResourceTrackerMockRecorder struct {
	mock *MockResourceTracker
}

// NewMockResourceTracker creates a new mock instance.
func NewMockResourceTracker(ctrl *gomock.Controller) *MockResourceTracker {
	mock := &MockResourceTracker{ctrl: ctrl}
	mock.recorder = &MockResourceTrackerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceTracker) EXPECT() *MockResourceTrackerMockRecorder {
	return m.recorder
}

// ConsumeStep mocks base method.
func (m *MockResourceTracker) ConsumeStep() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ConsumeStep")
}

// ConsumeStep indicates an expected call of ConsumeStep.
func (mr *MockResourceTrackerMockRecorder) ConsumeStep() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConsumeStep", reflect.TypeOf((*MockResourceTracker)(nil).ConsumeStep))
}

// Consumed mocks base method.
func (m *MockResourceTracker) Consumed() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consumed")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Consumed indicates an expected call of Consumed.
func (mr *MockResourceTrackerMockRecorder) Consumed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consumed", reflect.TypeOf((*MockResourceTracker)(nil).Consumed))
}

// NSteps mocks base method.
func (m *MockResourceTracker) NSteps() (uint64, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NSteps")
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// NSteps indicates an expected call of NSteps.
func (mr *MockResourceTrackerMockRecorder) NSteps() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NSteps", reflect.TypeOf((*MockResourceTracker)(nil).NSteps))
}

// RunResources mocks base method.
func (m *MockResourceTracker) RunResources() *RunResources {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RunResources")
	ret0, _ := ret[0].(*RunResources)
	return ret0
}

// RunResources indicates an expected call of RunResources.
func (mr *MockResourceTrackerMockRecorder) RunResources() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunResources", reflect.TypeOf((*MockResourceTracker)(nil).RunResources))
}
