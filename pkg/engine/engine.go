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

// Package engine defines the contract between jscrack and the transformation
// engine that actually rewrites JavaScript, plus a command-backed engine that
// delegates to an external executable.
package engine

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// ErrTransform marks a failure raised by the engine while transforming one unit.
var ErrTransform = errors.Base("transform failed")

// 🔧 Options is forwarded verbatim to the engine
type Options struct {
	Mangle      bool
	JSX         bool
	Unpack      bool
	Deobfuscate bool
	Unminify    bool
}

// DefaultOptions enables every pass except mangling.
func DefaultOptions() Options {
	return Options{
		JSX:         true,
		Unpack:      true,
		Deobfuscate: true,
		Unminify:    true,
	}
}

// Flags renders the options as engine command line flags. Enabled passes are
// implied, so only deviations from DefaultOptions are emitted.
func (o Options) Flags() []string {
	var flags []string
	if o.Mangle {
		flags = append(flags, "--mangle")
	}
	if !o.JSX {
		flags = append(flags, "--no-jsx")
	}
	if !o.Unpack {
		flags = append(flags, "--no-unpack")
	}
	if !o.Deobfuscate {
		flags = append(flags, "--no-deobfuscate")
	}
	if !o.Unminify {
		flags = append(flags, "--no-unminify")
	}
	return flags
}

// 📦 Bundle is the decomposed module set an engine may produce alongside the code
type Bundle interface {
	// Persist writes the bundle's modules beneath dir.
	Persist(ctx context.Context, dir string) error
}

// 📄 Result is the output of one transform
type Result struct {
	Code   string
	Bundle Bundle // nil when the engine produced a single self-contained unit
}

// HasBundle reports whether the engine decomposed the input into modules.
func (r *Result) HasBundle() bool {
	return r != nil && r.Bundle != nil
}

// 🎯 Engine transforms JavaScript source text
type Engine interface {
	Transform(ctx context.Context, source string, opts Options) (*Result, error)
}

// Apply runs eng on source and normalizes what comes back: engine errors and
// panics are reported as ErrTransform, and a missing result is an error.
func Apply(ctx context.Context, eng Engine, source string, opts Options) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.Errorf("%w: engine panicked: %v", ErrTransform, r)
		}
	}()

	result, err = eng.Transform(ctx, source, opts)
	if err != nil {
		if errors.Is(err, ErrTransform) {
			return nil, err
		}
		return nil, errors.Errorf("%w: %w", ErrTransform, err)
	}
	if result == nil {
		return nil, errors.Errorf("%w: engine returned no result", ErrTransform)
	}

	return result, nil
}
