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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/jscrack/pkg/engine"
	"github.com/walteh/jscrack/pkg/log"
	"github.com/walteh/jscrack/pkg/output"
	"github.com/walteh/jscrack/pkg/source"
	"github.com/walteh/jscrack/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📄 Outcome records what happened to one file of a batch
type Outcome struct {
	Path    string // input file
	Output  string // mapped output file, empty when mapping failed
	Success bool
	Bundled bool
	Err     error
}

// 📋 BatchReport collects outcomes in processing order. It is used for
// reporting only; nothing in the batch reads it back.
type BatchReport struct {
	Outcomes []Outcome
}

// Failed returns the outcomes that did not succeed.
func (r *BatchReport) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Success {
			failed = append(failed, o)
		}
	}
	return failed
}

// Summary condenses the report for display.
func (r *BatchReport) Summary() status.Summary {
	s := status.Summary{Total: len(r.Outcomes)}
	for _, o := range r.Outcomes {
		switch {
		case !o.Success:
			s.Failures = append(s.Failures, status.Failure{Path: o.Path, Err: o.Err})
		case o.Bundled:
			s.Succeeded++
			s.Bundled++
		default:
			s.Succeeded++
		}
	}
	return s
}

// 🏃 Batch processes every file of a directory run, one at a time
type Batch struct {
	Engine     engine.Engine
	Writer     *output.Writer
	Options    engine.Options
	InputRoot  string // absolute
	OutputRoot string // absolute
}

// Execute runs each file through the engine and writes its result under
// OutputRoot. A file that fails is recorded and reported, and the batch moves
// on to the next one. Cancelling ctx stops the batch with an error; the
// report then holds the files handled so far.
func (b *Batch) Execute(ctx context.Context, files []string) (*BatchReport, error) {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)

	report := &BatchReport{Outcomes: make([]Outcome, 0, len(files))}

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return report, errors.Errorf("run interrupted after %d of %d files: %w", i, len(files), err)
		}

		outcome := b.process(ctx, file)
		report.Outcomes = append(report.Outcomes, outcome)

		op := log.FileOperation{
			Path:    b.displayPath(file),
			Output:  outcome.Output,
			Status:  "written",
			Bundled: outcome.Bundled,
		}
		switch {
		case !outcome.Success:
			op.Status = "failed"
			op.Failed = true
			op.Err = outcome.Err
		case outcome.Bundled:
			op.Status = "unpacked"
		}
		console.LogFileOperation(ctx, op)

		logger.Debug().Msg(status.FormatProgress(i+1, len(files)))
	}

	if err := ctx.Err(); err != nil {
		return report, errors.Errorf("run interrupted after %d of %d files: %w", len(files), len(files), err)
	}

	return report, nil
}

// process handles a single file; every error stays inside its Outcome
func (b *Batch) process(ctx context.Context, file string) Outcome {
	outcome := Outcome{Path: file}

	unit, err := source.ReadFile(file)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	result, err := engine.Apply(ctx, b.Engine, unit.Content, b.Options)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	dest, err := output.MapPath(b.InputRoot, b.OutputRoot, file)
	if err != nil {
		outcome.Err = errors.Errorf("mapping output path: %w", err)
		return outcome
	}
	outcome.Output = dest

	if err := b.Writer.Materialize(ctx, result, dest); err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Success = true
	outcome.Bundled = result.HasBundle()
	return outcome
}

// displayPath shortens file to its path under the input root
func (b *Batch) displayPath(file string) string {
	rel, err := filepath.Rel(b.InputRoot, file)
	if err != nil {
		return file
	}
	return filepath.ToSlash(rel)
}
