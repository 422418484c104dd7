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

package vm

//go:generate mockgen -source resources.go -destination resources_mock.go -package vm

// ResourceTracker is the budget interface the host consults before every step.
type ResourceTracker interface {
	// Consumed reports whether the budget is exhausted.
	Consumed() bool
	// ConsumeStep charges one step against the budget.
	ConsumeStep()
	// NSteps returns the number of remaining steps, false if the budget is unbounded.
	NSteps() (uint64, bool)
	// RunResources gives access to the budget itself.
	RunResources() *RunResources
}

// RunResources bounds the number of steps a run may take.
type RunResources struct {
	used    uint64
	limit   uint64
	limited bool
}

// NewRunResources creates a budget of limit steps.
func NewRunResources(limit uint64) *RunResources {
	return &RunResources{limit: limit, limited: true}
}

// NewUnlimitedRunResources creates a budget that is never exhausted.
func NewUnlimitedRunResources() *RunResources {
	return &RunResources{}
}

func (r *RunResources) Consumed() bool {
	return r.limited && r.used >= r.limit
}

func (r *RunResources) ConsumeStep() {
	if r.Consumed() {
		return
	}
	r.used++
}

func (r *RunResources) NSteps() (uint64, bool) {
	if !r.limited {
		return 0, false
	}
	return r.limit - r.used, true
}

func (r *RunResources) RunResources() *RunResources {
	return r
}

// Used returns the number of steps charged so far.
func (r *RunResources) Used() uint64 {
	return r.used
}

// Limit returns the step cap, false if the budget is unbounded.
func (r *RunResources) Limit() (uint64, bool) {
	return r.limit, r.limited
}
