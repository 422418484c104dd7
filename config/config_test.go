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

package config

import (
	"flag"
	"testing"

	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

var testFlags = []cli.Flag{
	&logger.LogLevelFlag,
	&StepLimitFlag,
	&TraceFileFlag,
	&ProfileFlag,
	&ChainLoggingFlag,
	&QuietFlag,
}

// prepareMockCliContext creates a context of a command declaring all flags of a run.
func prepareMockCliContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("config_test", 0)
	set.String(logger.LogLevelFlag.Name, "debug", "")
	set.Uint64(StepLimitFlag.Name, 42, "")
	set.String(TraceFileFlag.Name, "/tmp/trace.gz", "")
	set.Bool(ProfileFlag.Name, true, "")
	set.Bool(ChainLoggingFlag.Name, false, "")
	set.Bool(QuietFlag.Name, true, "")
	require.NoError(t, set.Parse(args))

	app := cli.NewApp()
	app.HelpName = "cheatnet-run"
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = &cli.Command{Name: "test_command", Flags: testFlags}
	return ctx
}

func TestConfig_NewConfig(t *testing.T) {
	ctx := prepareMockCliContext(t, "scenario.yaml")

	cfg, err := NewConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		AppName:      "cheatnet-run",
		ScenarioFile: "scenario.yaml",
		LogLevel:     "debug",
		StepLimit:    42,
		TraceFile:    "/tmp/trace.gz",
		Profile:      true,
		ChainLogging: false,
		Quiet:        true,
	}, cfg)
	assert.NotNil(t, cfg.NewLogger("test"))
}

func TestConfig_NewConfigRequiresOneScenario(t *testing.T) {
	for name, args := range map[string][]string{
		"none":  nil,
		"two":   {"a.yaml", "b.yaml"},
		"empty": {""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewConfig(prepareMockCliContext(t, args...))
			assert.ErrorIs(t, err, ErrMissingScenario)
		})
	}
}

func TestGetFlagValue_UsesDefaultsOfUndeclaredFlags(t *testing.T) {
	ctx := cli.NewContext(cli.NewApp(), flag.NewFlagSet("test", 0), nil)

	cfg := createConfigFromFlags(ctx)
	assert.Equal(t, logger.LogLevelFlag.Value, cfg.LogLevel)
	assert.Zero(t, cfg.StepLimit)
	assert.Empty(t, cfg.TraceFile)
	assert.False(t, cfg.Profile)
	assert.Nil(t, getFlagValue(ctx, cli.IntFlag{Name: "unsupported"}))
}

func TestGetFlagValue(t *testing.T) {
	app := cli.NewApp()
	app.Commands = []*cli.Command{
		{
			Name: "testcmd",
			Flags: []cli.Flag{
				&cli.Uint64Flag{Name: "uint64flag"},
				&cli.StringFlag{Name: "stringflag"},
				&cli.PathFlag{Name: "pathflag"},
				&cli.BoolFlag{Name: "boolflag"},
			},
		},
	}

	testCases := []struct {
		name          string
		define        func(set *flag.FlagSet)
		flagToTest    interface{}
		expectedValue interface{}
	}{
		{
			name:          "Uint64Flag value",
			define:        func(set *flag.FlagSet) { set.Uint64("uint64flag", 100, "") },
			flagToTest:    cli.Uint64Flag{Name: "uint64flag"},
			expectedValue: uint64(100),
		},
		{
			name:          "StringFlag value",
			define:        func(set *flag.FlagSet) { set.String("stringflag", "test-string", "") },
			flagToTest:    cli.StringFlag{Name: "stringflag"},
			expectedValue: "test-string",
		},
		{
			name:          "PathFlag value",
			define:        func(set *flag.FlagSet) { set.String("pathflag", "/test/path", "") },
			flagToTest:    cli.PathFlag{Name: "pathflag"},
			expectedValue: "/test/path",
		},
		{
			name:          "BoolFlag value",
			define:        func(set *flag.FlagSet) { set.Bool("boolflag", true, "") },
			flagToTest:    cli.BoolFlag{Name: "boolflag"},
			expectedValue: true,
		},
		{
			name:          "Flag not declared by command",
			define:        func(set *flag.FlagSet) {},
			flagToTest:    cli.BoolFlag{Name: "other", Value: true},
			expectedValue: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set := flag.NewFlagSet("test", 0)
			tc.define(set)
			ctx := cli.NewContext(app, set, nil)
			ctx.Command = app.Commands[0]

			assert.Equal(t, tc.expectedValue, getFlagValue(ctx, tc.flagToTest))
		})
	}
}
