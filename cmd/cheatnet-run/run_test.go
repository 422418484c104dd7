package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/0xsoniclabs/cheatnet/config"
	"github.com/0xsoniclabs/cheatnet/interceptor/contractexec"
	"github.com/0xsoniclabs/cheatnet/interceptor/recorder"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const expectedOutput = "" +
	"original value: [310939249775], converted to a string: [Hello]\n" +
	"original value: [1]\n" +
	"original value: [33], converted to a string: [!]\n"

func loadTestScenario(t *testing.T) *runner.Scenario {
	s, err := runner.LoadScenario("testdata/scenario.yaml")
	require.NoError(t, err)
	return s
}

func TestRun_PrintsScenarioOutput(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(&config.Config{LogLevel: "critical"}, loadTestScenario(t), out)
	require.NoError(t, err)
	assert.Equal(t, expectedOutput, out.String())
}

func TestRun_QuietDiscardsOutput(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(&config.Config{LogLevel: "critical", Quiet: true}, loadTestScenario(t), out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRun_StepLimitOverridesScenario(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(&config.Config{LogLevel: "critical", StepLimit: 1}, loadTestScenario(t), out)
	assert.ErrorIs(t, err, runner.ErrResourcesExhausted)
	assert.Equal(t, "original value: [310939249775], converted to a string: [Hello]\n", out.String())
}

func TestRun_RecordsTrace(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "trace.gz")
	s, err := runner.ParseScenario([]byte("steps:\n  - print: [1]\n  - alloc_segment: true\n  - cheatcode:\n      selector: mock_call\n"))
	require.NoError(t, err)

	err = run(&config.Config{LogLevel: "critical", TraceFile: fp, ChainLogging: true}, s, &bytes.Buffer{})
	assert.ErrorIs(t, err, contractexec.ErrUnsupportedCheatcode)

	records, err := recorder.ReadFile(fp)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, recorder.Record{Step: 0, Kind: "cheatcode", Selector: "print"}, records[0])
	assert.Equal(t, recorder.Record{Step: 1, Kind: "alloc_segment"}, records[1])
	assert.Equal(t, uint64(2), records[2].Step)
	assert.Equal(t, "mock_call", records[2].Selector)
	assert.Contains(t, records[2].Err, "only `print` cheatcode is available in contracts")
}

func TestRun_TraceFileMustNotExist(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "trace.gz")
	require.NoError(t, run(&config.Config{LogLevel: "critical", TraceFile: fp}, loadTestScenario(t), &bytes.Buffer{}))

	err := run(&config.Config{LogLevel: "critical", TraceFile: fp}, loadTestScenario(t), &bytes.Buffer{})
	assert.ErrorContains(t, err, "already exists")
}

func TestRun_PrintsProfile(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(&config.Config{LogLevel: "critical", Profile: true}, loadTestScenario(t), out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), expectedOutput)
	assert.Contains(t, out.String(), "cheatcode(print)")
	assert.Contains(t, strings.ToLower(out.String()), "total (3 steps)")
}

func TestRunScenarioApp(t *testing.T) {
	err := runScenarioApp.Run([]string{"cheatnet-run", "--log", "critical", "--quiet", "testdata/scenario.yaml"})
	assert.NoError(t, err)

	err = runScenarioApp.Run([]string{"cheatnet-run", "--log", "critical"})
	assert.ErrorIs(t, err, config.ErrMissingScenario)

	err = runScenarioApp.Run([]string{"cheatnet-run", "--log", "critical", "testdata/missing.yaml"})
	assert.ErrorContains(t, err, "cannot read scenario")
}

func TestRun_LogsAppNameAndScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Noticef("%v: running scenario %v", "cheatnet-run", "testdata/scenario.yaml")

	logRunStart(log, &config.Config{AppName: "cheatnet-run", ScenarioFile: "testdata/scenario.yaml"})
}

func TestRun_LogsElapsedTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Noticef("Total elapsed time: %vh %vm %vs", uint32(2), uint32(0), uint32(5))

	logElapsedTime(log, 2*time.Hour+4500*time.Millisecond)
}
