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

package main

import (
	"io"
	"os"
	"time"

	"github.com/0xsoniclabs/cheatnet/config"
	"github.com/0xsoniclabs/cheatnet/hint/builtin"
	"github.com/0xsoniclabs/cheatnet/interceptor"
	"github.com/0xsoniclabs/cheatnet/interceptor/contractexec"
	"github.com/0xsoniclabs/cheatnet/interceptor/logging"
	"github.com/0xsoniclabs/cheatnet/interceptor/profiler"
	"github.com/0xsoniclabs/cheatnet/interceptor/recorder"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/runner"
	"github.com/0xsoniclabs/cheatnet/vm"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// RunScenario executes the scenario file given on the command line.
func RunScenario(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}

	scenario, err := runner.LoadScenario(cfg.ScenarioFile)
	if err != nil {
		return err
	}

	return run(cfg, scenario, os.Stdout)
}

// run assembles the interceptor chain selected by cfg and executes the scenario on it.
// It is factored out to facilitate testing without the need to create a cli.Context
// or a scenario file on disk. Print output and the profiling report go to output.
func run(cfg *config.Config, scenario *runner.Scenario, output io.Writer) (err error) {
	start := time.Now()
	log := cfg.NewLogger("Cheatnet")
	logRunStart(log, cfg)

	resources := vm.NewUnlimitedRunResources()
	if limit := stepLimit(cfg, scenario); limit > 0 {
		resources = vm.NewRunResources(limit)
	}

	printOutput := output
	if cfg.Quiet {
		printOutput = io.Discard
	}
	wrappers := []interceptor.WrapFunc{contractexec.MakeWrapper(printOutput, log)}

	if cfg.ChainLogging {
		wrappers = append(wrappers, logging.MakeWrapper(cfg.NewLogger("Chain")))
	}
	if cfg.TraceFile != "" {
		sink, sinkErr := recorder.NewFileSink(cfg.TraceFile)
		if sinkErr != nil {
			return errors.Wrap(sinkErr, "cannot create trace file")
		}
		var rec *recorder.Recorder
		wrappers = append(wrappers, recorder.MakeWrapper(sink, func(r *recorder.Recorder) {
			rec = r
		}))
		defer func() {
			if rec == nil {
				err = errors.Join(err, sink.Close())
				return
			}
			err = errors.Join(err, rec.Close())
		}()
	}

	var prof *profiler.Profiler
	if cfg.Profile {
		wrappers = append(wrappers, profiler.MakeWrapper(func(p *profiler.Profiler) {
			prof = p
		}))
	}

	dispatcher, err := interceptor.Build(builtin.NewProcessor(log), resources, wrappers...)
	if err != nil {
		return err
	}
	log.Infof("Interceptor chain: %v", dispatcher)

	res, err := runner.New(dispatcher, dispatcher, log).Run(scenario)
	log.Noticef("Executed %d of %d steps", res.Steps, len(scenario.Steps))
	if prof != nil {
		prof.Print(output)
	}
	logElapsedTime(log, time.Since(start))
	return err
}

func logRunStart(log logger.Logger, cfg *config.Config) {
	log.Noticef("%v: running scenario %v", cfg.AppName, cfg.ScenarioFile)
}

func logElapsedTime(log logger.Logger, elapsed time.Duration) {
	hours, minutes, seconds := logger.ParseTime(elapsed)
	log.Noticef("Total elapsed time: %vh %vm %vs", hours, minutes, seconds)
}

func stepLimit(cfg *config.Config, scenario *runner.Scenario) uint64 {
	if cfg.StepLimit != 0 {
		return cfg.StepLimit
	}
	return scenario.StepLimit
}
