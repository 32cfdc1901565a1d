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

// Package source resolves where a run's JavaScript comes from: a single file,
// a directory tree, or standard input.
package source

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ScriptExt is the only extension collected in directory mode.
const ScriptExt = ".js"

// StdinName is the display path of a unit read from standard input.
const StdinName = "<stdin>"

// ErrNotFound marks an input path that does not exist or cannot be statted.
var ErrNotFound = errors.Base("input not found")

// 🎯 ModeKind selects how the run reads its input
type ModeKind int

const (
	ModeStdin ModeKind = iota
	ModeFile
	ModeDirectory
)

// String returns a string representation of ModeKind
func (k ModeKind) String() string {
	switch k {
	case ModeFile:
		return "file"
	case ModeDirectory:
		return "directory"
	default:
		return "stdin"
	}
}

// 🗺️ Mode is the input mode of a run. It is resolved once and never changes.
type Mode struct {
	Kind ModeKind
	Path string // empty for ModeStdin
}

// 📄 Unit is one piece of source text and where it came from
type Unit struct {
	Path    string
	Content string
}

// Resolve determines the run mode for the given input argument.
func Resolve(path string) (Mode, error) {
	if path == "" {
		return Mode{Kind: ModeStdin}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Mode{}, errors.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	if info.IsDir() {
		return Mode{Kind: ModeDirectory, Path: path}, nil
	}
	return Mode{Kind: ModeFile, Path: path}, nil
}

// 🔧 ListOptions tunes directory enumeration
type ListOptions struct {
	// Exclude holds doublestar patterns matched against root-relative slash
	// paths. Matching directories are not descended into.
	Exclude []string
}

// ListScripts walks root depth-first and returns the absolute path of every
// regular file with ScriptExt, in discovery order.
func ListScripts(ctx context.Context, root string, opts ListOptions) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("getting absolute input path: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == absRoot {
			return nil
		}

		if excluded(absRoot, path, opts.Exclude) {
			logger.Debug().Str("path", path).Msg("excluded by pattern")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() || filepath.Ext(d.Name()) != ScriptExt {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("listing scripts in %s: %w", root, err)
	}

	logger.Debug().Str("root", absRoot).Int("count", len(files)).Msg("listed scripts")
	return files, nil
}

// excluded reports whether path matches any of the patterns
func excluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ReadFile reads a whole file into a Unit.
func ReadFile(path string) (Unit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Unit{}, errors.Errorf("reading %s: %w", path, err)
	}
	return Unit{Path: path, Content: string(content)}, nil
}

// ReadStdin drains r completely. It blocks until the stream is closed.
func ReadStdin(r io.Reader) (Unit, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Unit{}, errors.Errorf("reading standard input: %w", err)
	}
	return Unit{Path: StdinName, Content: string(content)}, nil
}
