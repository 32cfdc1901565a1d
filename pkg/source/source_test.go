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

package source_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/jscrack/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// 🧪 writeTree creates files (relative slash paths) under a temp root
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func relPaths(t *testing.T, root string, files []string) []string {
	t.Helper()
	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(absRoot, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func TestResolve(t *testing.T) {
	root := writeTree(t, map[string]string{"a.js": "a"})

	tests := []struct {
		name     string
		path     string
		wantKind source.ModeKind
		wantErr  error
	}{
		{name: "empty_is_stdin", path: "", wantKind: source.ModeStdin},
		{name: "directory", path: root, wantKind: source.ModeDirectory},
		{name: "file", path: filepath.Join(root, "a.js"), wantKind: source.ModeFile},
		{name: "missing", path: filepath.Join(root, "missing.js"), wantErr: source.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := source.Resolve(tt.path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap %v", tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, mode.Kind)
			assert.Equal(t, tt.path, mode.Path)
		})
	}
}

func TestListScripts(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	tests := []struct {
		name    string
		files   map[string]string
		opts    source.ListOptions
		want    []string
		wantErr string
	}{
		{
			name: "only_js_files",
			files: map[string]string{
				"a.js":        "a",
				"nested/b.js": "b",
				"c.txt":       "c",
			},
			want: []string{"a.js", "nested/b.js"},
		},
		{
			name: "deeply_nested",
			files: map[string]string{
				"x/y/z/w/deep.js": "d",
				"x/y/other.mjs":   "m",
				"x/readme.md":     "r",
			},
			want: []string{"x/y/z/w/deep.js"},
		},
		{
			name: "directory_named_like_script_is_recursed",
			files: map[string]string{
				"lib.js/inner.js": "i",
			},
			want: []string{"lib.js/inner.js"},
		},
		{
			name:  "empty_tree",
			files: map[string]string{},
			want:  []string{},
		},
		{
			name: "exclude_patterns",
			files: map[string]string{
				"a.js":                "a",
				"node_modules/dep.js": "d",
				"src/a.min.js":        "m",
				"src/b.js":            "b",
			},
			opts: source.ListOptions{Exclude: []string{"node_modules", "**/*.min.js"}},
			want: []string{"a.js", "src/b.js"},
		},
		{
			name:    "invalid_pattern",
			files:   map[string]string{"a.js": "a"},
			opts:    source.ListOptions{Exclude: []string{"[unterminated"}},
			wantErr: "invalid exclude pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, tt.files)

			files, err := source.ListScripts(ctx, root, tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			for _, f := range files {
				assert.True(t, filepath.IsAbs(f), "paths should be absolute: %s", f)
			}
			assert.Equal(t, tt.want, relPaths(t, root, files))
		})
	}
}

func TestListScriptsMissingRoot(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	_, err := source.ListScripts(ctx, filepath.Join(t.TempDir(), "nope"), source.ListOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing scripts")
}

func TestReadFile(t *testing.T) {
	root := writeTree(t, map[string]string{"a.js": "var a = 1;"})

	unit, err := source.ReadFile(filepath.Join(root, "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "var a = 1;", unit.Content)
	assert.Equal(t, filepath.Join(root, "a.js"), unit.Path)

	_, err = source.ReadFile(filepath.Join(root, "missing.js"))
	require.Error(t, err)
}

func TestReadStdin(t *testing.T) {
	unit, err := source.ReadStdin(strings.NewReader("var x=1"))
	require.NoError(t, err)
	assert.Equal(t, "var x=1", unit.Content)
	assert.Equal(t, source.StdinName, unit.Path)
}

func TestModeKindString(t *testing.T) {
	assert.Equal(t, "stdin", source.ModeStdin.String())
	assert.Equal(t, "file", source.ModeFile.String())
	assert.Equal(t, "directory", source.ModeDirectory.String())
}
