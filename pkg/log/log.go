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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 10 // Width for status text
)

// 🎯 FileOperation represents one processed unit for logging
type FileOperation struct {
	Path    string // Input path, relative to the input root when there is one
	Output  string // Where the result was written
	Status  string // Operation status
	Failed  bool   // Whether processing failed
	Bundled bool   // Whether the engine emitted a module bundle
	Err     error  // Failure cause
}

// 📦 RunOperation describes the run being logged
type RunOperation struct {
	Mode   string // stdin, file or directory
	Input  string
	Output string
}

// 🎯 Logger handles user-facing console lines, mirrored to zerolog
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	operations []FileOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or a discarding logger when
// none was attached
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(io.Discard, zerolog.Nop())
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	symbol := '✓'
	symbolColor := color.FgGreen
	switch {
	case op.Failed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.Bundled:
		symbol = '◆'
		symbolColor = color.FgMagenta
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		fmt.Sprintf("%-*s", statusWidth, op.Status))

	if op.Err != nil {
		line += " " + color.New(color.FgRed).Sprint(op.Err.Error())
	}
	return line
}

// 📝 LogFileOperation logs a processed unit
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	if op.Failed {
		l.zlog.Error().
			Err(op.Err).
			Str("file", op.Path).
			Msg("failed to process file")
		return
	}

	l.zlog.Info().
		Str("file", op.Path).
		Str("output", op.Output).
		Str("status", op.Status).
		Bool("bundled", op.Bundled).
		Msg("file processed")
}

// 📝 StartRun starts a new run
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.operations = nil

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Input),
		color.New(color.Faint).Sprint("→"),
		color.New(color.FgCyan).Sprint(op.Output))

	l.zlog.Info().
		Str("mode", op.Mode).
		Str("input", op.Input).
		Str("output", op.Output).
		Msg("starting run")
}

// 📝 EndRun ends the current run
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return
	}

	failed := 0
	for _, op := range l.operations {
		if op.Failed {
			failed++
		}
	}

	l.zlog.Info().
		Str("input", l.currentRun.Input).
		Int("files", len(l.operations)).
		Int("failed", failed).
		Msg("run complete")

	l.currentRun = nil
	l.operations = nil
}

// ⚠️ Warning prints a note the user should act on, mirrored as a zerolog warning
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}
