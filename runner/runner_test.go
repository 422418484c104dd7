package runner

import (
	"bytes"
	"errors"
	"testing"

	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/hint/builtin"
	"github.com/0xsoniclabs/cheatnet/interceptor"
	"github.com/0xsoniclabs/cheatnet/interceptor/contractexec"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRunner(t *testing.T, limit uint64) (*Runner, *bytes.Buffer, *vm.RunResources) {
	log := logger.NewLogger("critical", "runner-test")
	out := &bytes.Buffer{}
	resources := vm.NewRunResources(limit)
	dispatcher, err := interceptor.Build(builtin.NewProcessor(log), resources, contractexec.MakeWrapper(out, log))
	require.NoError(t, err)
	return New(dispatcher, dispatcher, log), out, resources
}

func TestRunner_RunsScenario(t *testing.T) {
	s, err := LoadScenario("testdata/hello.yaml")
	require.NoError(t, err)
	r, out, resources := newTestRunner(t, s.StepLimit)

	res, err := r.Run(s)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Steps)
	assert.Equal(t, uint64(6), resources.Used())
	assert.Equal(t, ""+
		"original value: [310939249775], converted to a string: [Hello]\n"+
		"original value: [42], converted to a string: [*]\n"+
		"original value: [310939249775], converted to a string: [Hello]\n",
		out.String())
	assert.Equal(t, 1, res.Scopes.Depth())

	// program, execution, one input segment per cheatcode and the allocated segment
	assert.Equal(t, 6, res.Machine.Memory.NumSegments())
	allocated, err := res.Machine.Memory.GetRelocatable(vm.Relocatable{Segment: vm.ExecutionSegment, Offset: 9})
	require.NoError(t, err)
	assert.Equal(t, vm.Relocatable{Segment: 4}, allocated)
	assert.Equal(t, vm.Relocatable{Segment: vm.ExecutionSegment, Offset: 15}, res.Machine.AP)
}

func TestRunner_StopsWhenResourcesAreConsumed(t *testing.T) {
	s, err := ParseScenario([]byte("steps:\n  - print: [1]\n  - print: [2]\n  - print: [3]\n"))
	require.NoError(t, err)
	r, out, _ := newTestRunner(t, 2)

	res, err := r.Run(s)
	assert.ErrorIs(t, err, ErrResourcesExhausted)
	assert.Equal(t, 2, res.Steps)
	assert.Equal(t, []string{"original value: [1]", "original value: [2]"}, lines(out))
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	s, err := ParseScenario([]byte("steps:\n  - print: [1]\n  - cheatcode:\n      selector: mock_call\n      inputs: [1, 2]\n  - print: [3]\n"))
	require.NoError(t, err)
	r, out, resources := newTestRunner(t, 10)

	res, err := r.Run(s)
	assert.ErrorIs(t, err, contractexec.ErrUnsupportedCheatcode)
	assert.ErrorContains(t, err, "step 1 failed")
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, uint64(1), resources.Used())
	assert.Len(t, lines(out), 1)
}

func TestRunner_UnknownCodeFailsToCompile(t *testing.T) {
	s, err := ParseScenario([]byte("steps:\n  - code: memory[ap] = 1\n"))
	require.NoError(t, err)
	r, _, _ := newTestRunner(t, 10)

	_, err = r.Run(s)
	assert.ErrorIs(t, err, builtin.ErrUnknownHint)
	assert.ErrorContains(t, err, "cannot prepare step 0")
}

func TestRunner_ChargesOneStepPerHint(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor := hint.NewMockProcessor(ctrl)
	tracker := vm.NewMockResourceTracker(ctrl)
	r := New(processor, tracker, logger.NewLogger("critical", "runner-test"))

	injected := errors.New("injected")
	gomock.InOrder(
		tracker.EXPECT().Consumed().Return(false),
		processor.EXPECT().ExecuteHint(gomock.Any(), gomock.Any(), &hint.AllocSegment{}, nil).Return(nil),
		tracker.EXPECT().ConsumeStep(),
		tracker.EXPECT().Consumed().Return(false),
		processor.EXPECT().ExecuteHint(gomock.Any(), gomock.Any(), &hint.AllocSegment{}, nil).Return(injected),
	)

	res, err := r.Run(&Scenario{Steps: []Step{{AllocSegment: true}, {AllocSegment: true}}})
	assert.ErrorIs(t, err, injected)
	assert.Equal(t, 1, res.Steps)
}

func lines(out *bytes.Buffer) []string {
	var res []string
	for _, line := range bytes.Split(out.Bytes(), []byte("\n")) {
		if len(line) > 0 {
			res = append(res, string(line))
		}
	}
	return res
}
