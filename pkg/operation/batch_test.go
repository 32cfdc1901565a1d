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

package operation_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/jscrack/pkg/engine"
	"github.com/walteh/jscrack/pkg/operation"
	"github.com/walteh/jscrack/pkg/output"
	"gitlab.com/tozd/go/errors"
)

func TestBatchWriteFailureIsIsolated(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	src := writeTree(t, map[string]string{
		"a.js":        "var a;",
		"nested/b.js": "var b;",
	})
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(out, 0755))
	// a file where a directory is needed makes nested/b.js unwritable
	require.NoError(t, os.WriteFile(filepath.Join(out, "nested"), []byte("in the way"), 0644))

	batch := &operation.Batch{
		Engine:     engine.Func(upper),
		Writer:     output.NewWriter(&bytes.Buffer{}),
		InputRoot:  src,
		OutputRoot: out,
	}

	report, err := batch.Execute(ctx, []string{
		filepath.Join(src, "nested", "b.js"),
		filepath.Join(src, "a.js"),
	})
	require.NoError(t, err)

	require.Len(t, report.Outcomes, 2)
	assert.False(t, report.Outcomes[0].Success)
	assert.Contains(t, report.Outcomes[0].Err.Error(), "creating parent directories")
	assert.True(t, report.Outcomes[1].Success)

	got, err := os.ReadFile(filepath.Join(out, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "VAR A;", string(got))
}

func TestBatchMissingFile(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	src := writeTree(t, map[string]string{"a.js": "var a;"})
	out := filepath.Join(t.TempDir(), "out")

	calls := 0
	batch := &operation.Batch{
		Engine: engine.Func(func(ctx context.Context, s string, opts engine.Options) (*engine.Result, error) {
			calls++
			return upper(ctx, s, opts)
		}),
		Writer:     output.NewWriter(&bytes.Buffer{}),
		InputRoot:  src,
		OutputRoot: out,
	}

	report, err := batch.Execute(ctx, []string{
		filepath.Join(src, "gone.js"),
		filepath.Join(src, "a.js"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "engine should only see readable files")
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, filepath.Join(src, "gone.js"), report.Failed()[0].Path)
	assert.Empty(t, report.Failed()[0].Output)
}

func TestBatchForwardsOptions(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	src := writeTree(t, map[string]string{"a.js": "a", "b.js": "b"})
	out := filepath.Join(t.TempDir(), "out")
	want := engine.Options{Mangle: true, Unminify: true}

	var seen []engine.Options
	batch := &operation.Batch{
		Engine: engine.Func(func(ctx context.Context, s string, opts engine.Options) (*engine.Result, error) {
			seen = append(seen, opts)
			return &engine.Result{Code: strings.Repeat(s, 2)}, nil
		}),
		Writer:     output.NewWriter(&bytes.Buffer{}),
		Options:    want,
		InputRoot:  src,
		OutputRoot: out,
	}

	report, err := batch.Execute(ctx, []string{filepath.Join(src, "a.js"), filepath.Join(src, "b.js")})
	require.NoError(t, err)
	assert.Empty(t, report.Failed())
	assert.Equal(t, []engine.Options{want, want}, seen)
}

func TestBatchStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background()))
	defer cancel()
	src := writeTree(t, map[string]string{"a.js": "a", "b.js": "b", "c.js": "c"})
	out := filepath.Join(t.TempDir(), "out")

	calls := 0
	batch := &operation.Batch{
		Engine: engine.Func(func(ctx context.Context, s string, opts engine.Options) (*engine.Result, error) {
			calls++
			cancel()
			return upper(ctx, s, opts)
		}),
		Writer:     output.NewWriter(&bytes.Buffer{}),
		InputRoot:  src,
		OutputRoot: out,
	}

	report, err := batch.Execute(ctx, []string{
		filepath.Join(src, "a.js"),
		filepath.Join(src, "b.js"),
		filepath.Join(src, "c.js"),
	})
	require.Error(t, err, "a cancelled batch should fail")
	assert.True(t, errors.Is(err, context.Canceled), "unexpected error: %v", err)
	assert.Equal(t, 1, calls, "no file should start after cancellation")
	require.NotNil(t, report)
	assert.Len(t, report.Outcomes, 1)
}

func TestBatchReportSummary(t *testing.T) {
	report := &operation.BatchReport{Outcomes: []operation.Outcome{
		{Path: "a.js", Success: true},
		{Path: "b.js", Success: true, Bundled: true},
		{Path: "c.js", Err: errors.New("boom")},
	}}

	s := report.Summary()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Succeeded)
	assert.Equal(t, 1, s.Bundled)
	require.Len(t, s.Failures, 1)
	assert.Equal(t, "c.js", s.Failures[0].Path)
	assert.EqualError(t, s.Failures[0].Err, "boom")
}
