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

import "github.com/urfave/cli/v2"

var (
	// StepLimitFlag overrides the step limit of a scenario
	StepLimitFlag = cli.Uint64Flag{
		Name:  "step-limit",
		Usage: "maximum number of steps a run may consume; 0 keeps the limit of the scenario",
	}
	// TraceFileFlag enables recording of executed hints
	TraceFileFlag = cli.PathFlag{
		Name:  "trace-file",
		Usage: "gzip file the executed hints are recorded into; the file must not exist",
	}
	// ProfileFlag enables hint profiling
	ProfileFlag = cli.BoolFlag{
		Name:  "profile",
		Usage: "print execution statistics per hint kind after the run",
	}
	// ChainLoggingFlag enables logging of every request passing the interceptor chain
	ChainLoggingFlag = cli.BoolFlag{
		Name:  "chain-logging",
		Usage: "log every request passing the interceptor chain at debug level",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "discard the output of the print cheatcode",
	}
)
