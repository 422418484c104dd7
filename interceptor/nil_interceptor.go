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

import "github.com/0xsoniclabs/cheatnet/vm"

// NilInterceptor is an interceptor handling nothing. Links embed it and override only
// the capabilities they care about; Child has to be provided by the link itself.
type NilInterceptor struct{}

func (NilInterceptor) InterceptCompileHint(*CompileHintRequest) (any, bool, error) {
	return nil, false, nil
}

func (NilInterceptor) InterceptExecuteHint(*ExecuteHintRequest) (bool, error) {
	return false, nil
}

func (NilInterceptor) InterceptConsumed() (bool, bool) {
	return false, false
}

func (NilInterceptor) InterceptConsumeStep() bool {
	return false
}

func (NilInterceptor) InterceptNSteps() (uint64, bool, bool) {
	return 0, false, false
}

func (NilInterceptor) InterceptRunResources() (*vm.RunResources, bool) {
	return nil, false
}
