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

package recorder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// Record describes one executed hint.
type Record struct {
	// Step is the number of steps consumed before the hint was executed.
	Step     uint64
	Kind     string
	Selector string
	// Err is the error message of a failed execution, empty on success.
	Err string
}

//go:generate mockgen -source sink.go -destination sink_mock.go -package recorder

// Sink receives the records of a run.
type Sink interface {
	Write(rec Record) error
	Close() error
}

// MemorySink keeps all records in memory.
type MemorySink struct {
	Records []Record
	closed  bool
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(rec Record) error {
	if s.closed {
		return errors.New("sink is closed")
	}
	s.Records = append(s.Records, rec)
	return nil
}

func (s *MemorySink) Close() error {
	s.closed = true
	return nil
}

// WriteBuffer is the buffered writer used by the file sink.
type WriteBuffer interface {
	io.Writer
	Flush() error
}

type fileSink struct {
	buffer  WriteBuffer
	closers []io.Closer
}

// NewFileSink creates a gzip compressed trace file. The file must not exist yet.
func NewFileSink(filename string) (Sink, error) {
	_, err := os.Stat(filename)
	if err == nil {
		return nil, fmt.Errorf("file %s already exists", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	gzipWriter := gzip.NewWriter(file)
	return &fileSink{
		buffer:  bufio.NewWriter(gzipWriter),
		closers: []io.Closer{gzipWriter, file},
	}, nil
}

func (f *fileSink) Write(rec Record) error {
	_, err := fmt.Fprintf(f.buffer, "%d\t%s\t%s\t%s\n", rec.Step, strconv.Quote(rec.Kind), strconv.Quote(rec.Selector), strconv.Quote(rec.Err))
	if err != nil {
		return fmt.Errorf("error writing record to buffer: %w", err)
	}
	return nil
}

func (f *fileSink) Close() error {
	errs := []error{f.buffer.Flush()}
	for _, c := range f.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// ReadFile reads all records from a trace file written by a file sink.
func ReadFile(filename string) ([]Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open trace file: %s, %w", filename, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create gzip reader for trace file: %s, %w", filename, err)
	}
	defer gzipReader.Close()

	var records []Record
	scanner := bufio.NewScanner(gzipReader)
	for line := 1; scanner.Scan(); line++ {
		rec, err := parseRecord(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		return Record{}, errors.Newf("expected 4 fields, got %d", len(fields))
	}
	step, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Record{}, err
	}
	var text [3]string
	for i := range text {
		text[i], err = strconv.Unquote(fields[i+1])
		if err != nil {
			return Record{}, errors.Wrapf(err, "field %d", i+2)
		}
	}
	return Record{
		Step:     step,
		Kind:     text[0],
		Selector: text[1],
		Err:      text[2],
	}, nil
}
