// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:   "a.js",
					Output: "/tmp/out/a.js",
					Status: "written",
				})
			},
			wantLogs: []string{
				"✓ a.js                                written",
			},
		},
		{
			name: "log_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Mode:   "directory",
					Input:  "src",
					Output: "out",
				})
			},
			wantLogs: []string{
				"◆ src → out",
			},
		},
		{
			name: "log_warning",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("modules are not displayed")
			},
			wantLogs: []string{
				"⚠️  modules are not displayed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(&bytes.Buffer{}, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "logger from context should be the same instance")

	fallback := FromContext(context.Background())
	require.NotNil(t, fallback, "missing logger should fall back to a discarding one")
	assert.NotPanics(t, func() { fallback.Warning("ignored") })
}

func TestFileOperationFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "written_file",
			op:   FileOperation{Path: "a.js", Status: "written"},
			want: "    ✓ a.js                                written   ",
		},
		{
			name: "bundled_file",
			op:   FileOperation{Path: "vendor.js", Status: "unpacked", Bundled: true},
			want: "    ◆ vendor.js                           unpacked  ",
		},
		{
			name: "failed_file",
			op:   FileOperation{Path: "bad.js", Status: "failed", Failed: true, Err: errors.New("boom")},
			want: "    ✗ bad.js                              failed     boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(&bytes.Buffer{}, zerolog.Nop())
			assert.Equal(t, tt.want, logger.formatFileOperation(tt.op))
		})
	}
}

func TestEndRunSummary(t *testing.T) {
	var logs bytes.Buffer
	logger := New(&bytes.Buffer{}, zerolog.New(&logs))
	ctx := context.Background()

	logger.StartRun(ctx, RunOperation{Mode: "directory", Input: "src", Output: "out"})
	logger.LogFileOperation(ctx, FileOperation{Path: "a.js", Status: "written"})
	logger.LogFileOperation(ctx, FileOperation{Path: "b.js", Status: "failed", Failed: true, Err: errors.New("boom")})
	logger.EndRun(ctx)

	assert.Contains(t, logs.String(), `"files":2`)
	assert.Contains(t, logs.String(), `"failed":1`)
	assert.Contains(t, logs.String(), "failed to process file")

	// second EndRun is a no-op
	logs.Reset()
	logger.EndRun(ctx)
	assert.Empty(t, logs.String())
}
