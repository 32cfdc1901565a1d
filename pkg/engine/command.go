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

package engine

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultCommand is the engine executable used when none is configured.
	DefaultCommand = "webcrack"

	// primaryOutput is the file a saving engine writes the transformed code to.
	primaryOutput = "deobfuscated.js"
)

// 🔌 Command runs an external engine executable once per unit.
//
// The source is fed on stdin and the engine is asked to save its result into a
// scratch directory. The primary output file becomes Result.Code, every other
// file written there becomes part of the bundle. Engines that do not save
// anything and just print the code on stdout are supported too.
type Command struct {
	Path string   // executable name or path
	Args []string // extra leading arguments, before option flags
}

// 🏭 NewCommand creates a command engine
func NewCommand(path string, args ...string) *Command {
	if path == "" {
		path = DefaultCommand
	}
	return &Command{
		Path: path,
		Args: args,
	}
}

// Transform implements Engine.
func (c *Command) Transform(ctx context.Context, source string, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	scratch, err := os.MkdirTemp("", "jscrack-*")
	if err != nil {
		return nil, errors.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	args := make([]string, 0, len(c.Args)+8)
	args = append(args, c.Args...)
	args = append(args, opts.Flags()...)
	args = append(args, "--output", scratch, "--force")

	logger.Debug().Str("engine", c.Path).Strs("args", args).Msg("running engine")

	stdout, stderr, err := c.run(ctx, args, source)
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.Errorf("%w: %s: %w: %s", ErrTransform, c.Path, err, msg)
		}
		return nil, errors.Errorf("%w: %s: %w", ErrTransform, c.Path, err)
	}

	return collect(scratch, stdout.String())
}

// run starts the engine and drains both output streams until it exits
func (c *Command) run(ctx context.Context, args []string, source string) (*bytes.Buffer, *bytes.Buffer, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Stdin = strings.NewReader(source)

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return &stdout, &stderr, errors.Errorf("opening stdout: %w", err)
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return &stdout, &stderr, errors.Errorf("opening stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return &stdout, &stderr, errors.Errorf("starting engine: %w", err)
	}

	// both pipes must be drained before Wait
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(&stdout, outPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(&stderr, errPipe)
		return err
	})
	copyErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		return &stdout, &stderr, errors.Errorf("waiting for engine: %w", err)
	}
	if copyErr != nil {
		return &stdout, &stderr, errors.Errorf("reading engine output: %w", copyErr)
	}

	return &stdout, &stderr, nil
}

// collect turns the scratch directory contents into a Result
func collect(scratch string, printed string) (*Result, error) {
	var code *string
	files := make(map[string][]byte)

	err := filepath.WalkDir(scratch, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(scratch, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if rel == primaryOutput {
			s := string(content)
			code = &s
			return nil
		}
		files[filepath.ToSlash(rel)] = content
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("reading engine output: %w", err)
	}

	result := &Result{}
	switch {
	case code != nil:
		result.Code = *code
	case strings.TrimSpace(printed) != "":
		result.Code = strings.TrimSuffix(printed, "\n")
	default:
		return nil, errors.Errorf("%w: engine produced no output", ErrTransform)
	}

	if len(files) > 0 {
		result.Bundle = NewFileBundle(files)
	}

	return result, nil
}

// Func adapts a plain function to the Engine interface.
type Func func(ctx context.Context, source string, opts Options) (*Result, error)

// Transform implements Engine.
func (f Func) Transform(ctx context.Context, source string, opts Options) (*Result, error) {
	return f(ctx, source, opts)
}
