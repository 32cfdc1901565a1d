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

package operation

import (
	"context"
	"io"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/jscrack/pkg/engine"
	"github.com/walteh/jscrack/pkg/log"
	"github.com/walteh/jscrack/pkg/output"
	"github.com/walteh/jscrack/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// ErrConfiguration marks a request that cannot run as given.
var ErrConfiguration = errors.Base("invalid configuration")

// 🎯 Request describes one invocation
type Request struct {
	Input   string // file or directory; empty reads stdin
	Output  string // output file, or output root for a directory
	Force   bool   // clear an existing output instead of failing
	Options engine.Options
	Exclude []string // doublestar patterns skipped in directory mode
}

// 🔧 Options contains the collaborators of a Runner
type Options struct {
	Engine engine.Engine
	Stdin  io.Reader
	Stdout io.Writer
}

// 🏃 Runner dispatches a request to single-unit or batch processing
type Runner struct {
	engine engine.Engine
	stdin  io.Reader
	writer *output.Writer
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) (*Runner, error) {
	if opts.Engine == nil {
		return nil, errors.Errorf("engine is required")
	}
	if opts.Stdin == nil {
		return nil, errors.Errorf("stdin is required")
	}
	if opts.Stdout == nil {
		return nil, errors.Errorf("stdout is required")
	}
	return &Runner{
		engine: opts.Engine,
		stdin:  opts.Stdin,
		writer: output.NewWriter(opts.Stdout),
	}, nil
}

// Run executes req. Directory runs return their report even when some files
// failed; only errors that stop the whole run are returned. An interrupted
// directory run returns both the partial report and the error.
func (r *Runner) Run(ctx context.Context, req Request) (*BatchReport, error) {
	mode, err := source.Resolve(req.Input)
	if err != nil {
		return nil, err
	}

	ctx = zerolog.Ctx(ctx).With().Str("mode", mode.Kind.String()).Logger().WithContext(ctx)

	if mode.Kind == source.ModeDirectory {
		return r.runDirectory(ctx, mode, req)
	}
	return nil, r.runSingle(ctx, mode, req)
}

// 📁 runDirectory checks every precondition before touching any file
func (r *Runner) runDirectory(ctx context.Context, mode source.Mode, req Request) (*BatchReport, error) {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)

	if req.Output == "" {
		return nil, errors.Errorf("%w: an output directory is required when processing a directory", ErrConfiguration)
	}

	for _, pattern := range req.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("%w: invalid exclude pattern %q", ErrConfiguration, pattern)
		}
	}

	absInput, err := filepath.Abs(mode.Path)
	if err != nil {
		return nil, errors.Errorf("getting absolute input path: %w", err)
	}
	absOutput, err := filepath.Abs(req.Output)
	if err != nil {
		return nil, errors.Errorf("getting absolute output path: %w", err)
	}

	// clearing the output must never remove the input
	if rel, err := filepath.Rel(absOutput, absInput); err == nil && filepath.IsLocal(rel) {
		return nil, errors.Errorf("%w: input %s is inside output %s", ErrConfiguration, mode.Path, req.Output)
	}

	action, err := output.Resolve(ctx, absOutput, req.Force)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("output", absOutput).Stringer("action", action).Msg("resolved output")

	files, err := source.ListScripts(ctx, absInput, source.ListOptions{Exclude: req.Exclude})
	if err != nil {
		return nil, err
	}

	console.StartRun(ctx, log.RunOperation{
		Mode:   mode.Kind.String(),
		Input:  mode.Path,
		Output: req.Output,
	})
	defer console.EndRun(ctx)

	batch := &Batch{
		Engine:     r.engine,
		Writer:     r.writer,
		Options:    req.Options,
		InputRoot:  absInput,
		OutputRoot: absOutput,
	}

	return batch.Execute(ctx, files)
}

// 📄 runSingle processes a file or stdin. There is one unit, so any failure
// ends the run.
func (r *Runner) runSingle(ctx context.Context, mode source.Mode, req Request) error {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)

	if req.Output != "" && mode.Kind == source.ModeFile {
		same, err := samePath(mode.Path, req.Output)
		if err != nil {
			return err
		}
		if same {
			return errors.Errorf("%w: output %s is the input file", ErrConfiguration, req.Output)
		}
	}

	if req.Output != "" {
		if _, err := output.Resolve(ctx, req.Output, req.Force); err != nil {
			return err
		}
	}

	var unit source.Unit
	var err error
	if mode.Kind == source.ModeFile {
		unit, err = source.ReadFile(mode.Path)
	} else {
		unit, err = source.ReadStdin(r.stdin)
	}
	if err != nil {
		return err
	}

	logger.Debug().Str("input", unit.Path).Int("bytes", len(unit.Content)).Msg("read source")

	result, err := engine.Apply(ctx, r.engine, unit.Content, req.Options)
	if err != nil {
		return errors.Errorf("processing %s: %w", unit.Path, err)
	}

	if err := r.writer.Materialize(ctx, result, req.Output); err != nil {
		return errors.Errorf("saving result: %w", err)
	}

	if req.Output != "" {
		op := log.FileOperation{
			Path:    unit.Path,
			Output:  req.Output,
			Status:  "written",
			Bundled: result.HasBundle(),
		}
		if op.Bundled {
			op.Status = "unpacked"
		}
		console.LogFileOperation(ctx, op)
	}

	return nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, errors.Errorf("getting absolute path: %w", err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, errors.Errorf("getting absolute path: %w", err)
	}
	return absA == absB, nil
}
