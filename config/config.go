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

// Package config collects the settings of a run from the command line.
package config

import (
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

var ErrMissingScenario = errors.New("missing scenario file")

// Config summarises the settings of one run.
type Config struct {
	AppName      string
	ScenarioFile string

	LogLevel     string
	StepLimit    uint64 // 0 keeps the step limit of the scenario
	TraceFile    string // empty disables recording
	Profile      bool
	ChainLogging bool
	Quiet        bool
}

// NewConfig creates the configuration of a run. The single command line argument names
// the scenario file.
func NewConfig(ctx *cli.Context) (*Config, error) {
	if ctx.Args().Len() != 1 {
		return nil, errors.Wrapf(ErrMissingScenario, "expected exactly one argument, got %d", ctx.Args().Len())
	}
	cfg := createConfigFromFlags(ctx)
	cfg.ScenarioFile = ctx.Args().First()
	if cfg.ScenarioFile == "" {
		return nil, ErrMissingScenario
	}
	return cfg, nil
}

// NewLogger creates a logger for module at the configured level.
func (cfg *Config) NewLogger(module string) logger.Logger {
	return logger.NewLogger(cfg.LogLevel, module)
}
