package builtin

import (
	"testing"

	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_IsHintProcessor(t *testing.T) {
	var _ hint.Processor = &Processor{}
}

func TestProcessor_CompileKnownHint(t *testing.T) {
	p := NewProcessor(logger.NewLogger("critical", "test"))
	tracking := hint.ApTracking{Group: 1, Offset: 2}
	data, err := p.CompileHint(AllocSegmentCode, tracking, map[string]int{"x": 0}, nil)
	require.NoError(t, err)

	core, ok := data.(*hint.Core)
	require.True(t, ok)
	assert.Equal(t, AllocSegmentCode, core.Code)
	assert.Equal(t, tracking, core.ApTracking)
	assert.Equal(t, map[string]int{"x": 0}, core.ReferenceIds)
}

func TestProcessor_CompileUnknownHintFails(t *testing.T) {
	p := NewProcessor(logger.NewLogger("critical", "test"))
	_, err := p.CompileHint("print('hi')", hint.ApTracking{}, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownHint)
}

func TestProcessor_ExecuteAllocSegment(t *testing.T) {
	p := NewProcessor(logger.NewLogger("critical", "test"))
	machine := vm.NewVirtualMachine()

	data, err := p.CompileHint(AllocSegmentCode, hint.ApTracking{}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, p.ExecuteHint(machine, hint.NewExecutionScopes(), data, nil))

	assert.Equal(t, 3, machine.Memory.NumSegments())
	base, err := machine.Memory.GetRelocatable(machine.AP)
	require.NoError(t, err)
	assert.Equal(t, vm.Relocatable{Segment: 2}, base)
}

func TestProcessor_ExecuteStructuredAllocSegment(t *testing.T) {
	p := NewProcessor(logger.NewLogger("critical", "test"))
	machine := vm.NewVirtualMachine()

	err := p.ExecuteHint(machine, hint.NewExecutionScopes(), &hint.AllocSegment{Dst: vm.CellRef{Register: vm.FP, Offset: 3}}, nil)
	require.NoError(t, err)
	_, err = machine.Memory.GetRelocatable(vm.Relocatable{Segment: vm.ExecutionSegment, Offset: 3})
	assert.NoError(t, err)
}

func TestProcessor_FailedAllocSegmentAddsNoSegment(t *testing.T) {
	p := NewProcessor(logger.NewLogger("critical", "test"))
	machine := vm.NewVirtualMachine()
	require.NoError(t, machine.Memory.Insert(machine.AP, vm.FeltValue(felt.FromUint64(7))))

	err := p.ExecuteHint(machine, hint.NewExecutionScopes(), &hint.AllocSegment{Dst: vm.CellRef{Register: vm.AP}}, nil)
	assert.ErrorIs(t, err, vm.ErrInconsistentMemory)
	assert.Equal(t, 2, machine.Memory.NumSegments())

	machine.AP = vm.Relocatable{Segment: 5}
	err = p.ExecuteHint(machine, hint.NewExecutionScopes(), &hint.AllocSegment{Dst: vm.CellRef{Register: vm.AP}}, nil)
	assert.ErrorIs(t, err, vm.ErrUnknownSegment)
	assert.Equal(t, 2, machine.Memory.NumSegments())
}

func TestProcessor_ScopeHints(t *testing.T) {
	p := NewProcessor(logger.NewLogger("critical", "test"))
	scopes := hint.NewExecutionScopes()

	require.NoError(t, p.ExecuteHint(nil, scopes, &hint.Core{Code: EnterScopeCode}, nil))
	assert.Equal(t, 2, scopes.Depth())
	require.NoError(t, p.ExecuteHint(nil, scopes, &hint.Core{Code: ExitScopeCode}, nil))
	assert.ErrorIs(t, p.ExecuteHint(nil, scopes, &hint.Core{Code: ExitScopeCode}, nil), hint.ErrCannotExitMainScope)
}

func TestProcessor_RegisterCustomHint(t *testing.T) {
	p := NewProcessor(logger.NewLogger("critical", "test"))
	var got map[string]felt.Felt
	err := p.Register("custom", func(_ *vm.VirtualMachine, _ *hint.ExecutionScopes, _ *hint.Core, constants map[string]felt.Felt) error {
		got = constants
		return nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, p.Register("custom", nil), ErrHintAlreadyRegistered)

	constants := map[string]felt.Felt{"MAX": felt.FromUint64(10)}
	require.NoError(t, p.ExecuteHint(nil, hint.NewExecutionScopes(), &hint.Core{Code: "custom"}, constants))
	assert.Equal(t, constants, got)
}

func TestProcessor_ExecuteUnknownPayloadFails(t *testing.T) {
	p := NewProcessor(logger.NewLogger("critical", "test"))
	tests := []any{
		&hint.Cheatcode{Selector: felt.FromUint64(1)},
		&hint.Core{Code: "unregistered"},
		"opaque",
	}
	for _, data := range tests {
		err := p.ExecuteHint(vm.NewVirtualMachine(), hint.NewExecutionScopes(), data, nil)
		assert.ErrorIs(t, err, ErrUnknownHint, "payload %v", data)
	}
}
