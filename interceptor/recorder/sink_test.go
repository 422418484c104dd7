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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemorySink_KeepsRecordsUntilClosed(t *testing.T) {
	sink := NewMemorySink()
	require.NoError(t, sink.Write(Record{Step: 1, Kind: "core"}))
	require.NoError(t, sink.Close())
	assert.Error(t, sink.Write(Record{Step: 2, Kind: "core"}))
	assert.Equal(t, []Record{{Step: 1, Kind: "core"}}, sink.Records)
}

func TestNewFileSink_FailsIfFileExists(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "trace.gz")
	sink, err := NewFileSink(fp)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	_, err = NewFileSink(fp)
	assert.ErrorContains(t, err, "already exists")
}

func TestFileSink_RecordsCanBeReadBack(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "trace.gz")
	sink, err := NewFileSink(fp)
	require.NoError(t, err)

	want := []Record{
		{Step: 0, Kind: "cheatcode", Selector: "print"},
		{Step: 3, Kind: "cheatcode", Selector: "mock_call", Err: "only `print` cheatcode is available in contracts\tmock_call"},
		{Step: 7, Kind: "core"},
	}
	for _, rec := range want {
		require.NoError(t, sink.Write(rec))
	}
	require.NoError(t, sink.Close())

	stats, err := os.Stat(fp)
	require.NoError(t, err)
	assert.NotZero(t, stats.Size())

	got, err := ReadFile(fp)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileSink_ReportsBufferErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	buffer := NewMockWriteBuffer(ctrl)
	mockErr := errors.New("mock error")
	sink := &fileSink{buffer: buffer}

	buffer.EXPECT().Write(gomock.Any()).Return(0, mockErr)
	err := sink.Write(Record{Kind: "core"})
	assert.ErrorIs(t, err, mockErr)

	buffer.EXPECT().Flush().Return(mockErr)
	assert.ErrorIs(t, sink.Close(), mockErr)
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content []byte
		wantErr string
	}{
		{
			name:    "NotGzip",
			content: []byte("plain text"),
			wantErr: "could not create gzip reader",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fp := filepath.Join(dir, test.name)
			require.NoError(t, os.WriteFile(fp, test.content, 0o600))
			_, err := ReadFile(fp)
			assert.ErrorContains(t, err, test.wantErr)
		})
	}

	_, err := ReadFile(filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "could not open trace file")
}

func TestParseRecord_RejectsMalformedLines(t *testing.T) {
	for _, line := range []string{
		"",
		"1\t\"core\"\t\"\"",
		"x\t\"core\"\t\"\"\t\"\"",
		"1\tcore\t\"\"\t\"\"",
	} {
		_, err := parseRecord(line)
		assert.Error(t, err, "line %q", line)
	}
}
