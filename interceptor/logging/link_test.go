package logging

import (
	"errors"
	"testing"

	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/interceptor"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLink_IsInterceptor(t *testing.T) {
	var _ interceptor.Interceptor = &Link{}
}

func TestLink_LogsAndForwardsExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLog := logger.NewMockLogger(ctrl)
	child := interceptor.NewMockInterceptor(ctrl)
	link := Wrap(child, mockLog)
	req := &interceptor.ExecuteHintRequest{HintData: &hint.Syscall{}}
	wantErr := errors.New("failed")

	gomock.InOrder(
		mockLog.EXPECT().Debugf("ExecuteHint, %v", "syscall"),
		child.EXPECT().InterceptExecuteHint(req).Return(true, wantErr),
		mockLog.EXPECT().Debugf("ExecuteHint, %v, failed: %v", "syscall", wantErr),
	)

	handled, err := link.InterceptExecuteHint(req)
	assert.True(t, handled)
	assert.Equal(t, wantErr, err)
}

func TestLink_LogsAndForwardsCompilation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLog := logger.NewMockLogger(ctrl)
	child := interceptor.NewMockInterceptor(ctrl)
	link := Wrap(child, mockLog)
	req := &interceptor.CompileHintRequest{Code: "x"}
	payload := &hint.Core{Code: "x"}

	mockLog.EXPECT().Debugf("CompileHint, %q, %v", "x", hint.ApTracking{})
	child.EXPECT().InterceptCompileHint(req).Return(payload, true, nil)

	data, handled, err := link.InterceptCompileHint(req)
	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Same(t, payload, data)
}

func TestLink_LogsAndForwardsResourceQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLog := logger.NewMockLogger(ctrl)
	tracker := vm.NewMockResourceTracker(ctrl)
	link := Wrap(interceptor.NewBase(hint.NewMockProcessor(ctrl), tracker), mockLog)
	resources := vm.NewRunResources(3)

	mockLog.EXPECT().Debugf("Consumed, %v", false)
	mockLog.EXPECT().Debugf("ConsumeStep")
	mockLog.EXPECT().Debugf("NSteps, %v, %v", uint64(2), true)
	mockLog.EXPECT().Debugf("RunResources")
	tracker.EXPECT().Consumed().Return(false)
	tracker.EXPECT().ConsumeStep()
	tracker.EXPECT().NSteps().Return(uint64(2), true)
	tracker.EXPECT().RunResources().Return(resources)

	consumed, handled := link.InterceptConsumed()
	assert.True(t, handled)
	assert.False(t, consumed)
	assert.True(t, link.InterceptConsumeStep())
	steps, bounded, handled := link.InterceptNSteps()
	assert.True(t, handled)
	assert.True(t, bounded)
	assert.Equal(t, uint64(2), steps)
	got, handled := link.InterceptRunResources()
	assert.True(t, handled)
	assert.Same(t, resources, got)
}

func TestLink_ChainBehavesAsWithoutLink(t *testing.T) {
	log := logger.NewLogger("critical", "test")
	resources := vm.NewRunResources(2)
	processor := &countingProcessor{}
	dispatcher, err := interceptor.Build(processor, resources, MakeWrapper(log), MakeWrapper(log))
	require.NoError(t, err)
	assert.Equal(t, 3, dispatcher.Depth())

	require.NoError(t, dispatcher.ExecuteHint(nil, nil, &hint.Core{}, map[string]felt.Felt{}))
	dispatcher.ConsumeStep()
	steps, bounded := dispatcher.NSteps()
	assert.True(t, bounded)
	assert.Equal(t, uint64(1), steps)
	assert.Equal(t, 1, processor.executed)
	assert.Same(t, resources, dispatcher.RunResources())
}

type countingProcessor struct {
	executed int
}

func (p *countingProcessor) CompileHint(string, hint.ApTracking, map[string]int, []hint.Reference) (any, error) {
	return nil, nil
}

func (p *countingProcessor) ExecuteHint(*vm.VirtualMachine, *hint.ExecutionScopes, any, map[string]felt.Felt) error {
	p.executed++
	return nil
}
