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

// Package contractexec provides the interceptor serving cheatcodes issued from within
// contract code. Only print is available there; every other cheatcode is rejected
// instead of being passed on to the more permissive links further inside.
package contractexec

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/0xsoniclabs/cheatnet/felt"
	"github.com/0xsoniclabs/cheatnet/hint"
	"github.com/0xsoniclabs/cheatnet/interceptor"
	"github.com/0xsoniclabs/cheatnet/logger"
	"github.com/0xsoniclabs/cheatnet/vm"
	"github.com/cockroachdb/errors"
)

// PrintSelector is the short-string selector of the only cheatcode served here.
const PrintSelector = "print"

// MakeWrapper returns a function wrapping a chain into a Handler, for use with
// interceptor.Build. A nil output defaults to stdout.
func MakeWrapper(output io.Writer, log logger.Logger) interceptor.WrapFunc {
	return func(inner interceptor.Interceptor) interceptor.Interceptor {
		return Wrap(inner, output, log)
	}
}

// Wrap makes a Handler owning child.
func Wrap(child interceptor.Interceptor, output io.Writer, log logger.Logger) *Handler {
	if output == nil {
		output = os.Stdout
	}
	return &Handler{
		child:  child,
		output: output,
		log:    log,
	}
}

// Handler intercepts the execution of Cheatcode hints. Compilation and resource
// tracking are left to its child.
type Handler struct {
	interceptor.NilInterceptor
	child  interceptor.Interceptor
	output io.Writer
	log    logger.Logger
}

func (h *Handler) Child() interceptor.Interceptor {
	return h.child
}

func (h *Handler) InterceptExecuteHint(req *interceptor.ExecuteHintRequest) (bool, error) {
	cheatcode, ok := req.HintData.(*hint.Cheatcode)
	if !ok {
		return false, nil
	}

	selector, err := decodeSelector(cheatcode.Selector)
	if err != nil {
		return true, err
	}
	if req.VM == nil {
		return true, NewMemoryReadError(errors.New("no virtual machine attached to request"))
	}
	inputs, err := extractInput(req.VM, cheatcode.InputStart, cheatcode.InputEnd)
	if err != nil {
		return true, err
	}

	switch selector {
	case PrintSelector:
		h.log.Debugf("print cheatcode with %d inputs", len(inputs))
		return true, h.print(inputs)
	default:
		h.log.Debugf("rejecting cheatcode %q", selector)
		return true, NewUnsupportedCheatcodeError(selector)
	}
}

func (h *Handler) print(inputs []felt.Felt) error {
	for _, value := range inputs {
		var err error
		if text, ok := felt.AsShortString(value); ok {
			_, err = fmt.Fprintf(h.output, "original value: [%v], converted to a string: [%v]\n", value, text)
		} else {
			_, err = fmt.Fprintf(h.output, "original value: [%v]\n", value)
		}
		if err != nil {
			return errors.Wrap(err, "cannot write print output")
		}
	}
	return nil
}

// decodeSelector interprets the significant bytes of the selector as text.
func decodeSelector(selector felt.Felt) (string, error) {
	b := selector.SignificantBytes()
	if !utf8.Valid(b) {
		return "", NewMalformedSelectorError(b)
	}
	return string(b), nil
}

type memoryReader interface {
	ExtractRelocatable(op vm.ResOperand) (vm.Relocatable, error)
	GetRange(start, end vm.Relocatable) ([]felt.Felt, error)
}

// extractInput reads the values stored between the addresses denoted by start and end.
func extractInput(memory memoryReader, start, end vm.ResOperand) ([]felt.Felt, error) {
	from, err := memory.ExtractRelocatable(start)
	if err != nil {
		return nil, NewMemoryReadError(err)
	}
	to, err := memory.ExtractRelocatable(end)
	if err != nil {
		return nil, NewMemoryReadError(err)
	}
	values, err := memory.GetRange(from, to)
	if err != nil {
		return nil, NewMemoryReadError(err)
	}
	return values, nil
}
