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

// Package output decides where results land and writes them there.
package output

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrConflict marks an existing output location that may not be cleared.
var ErrConflict = errors.Base("output already exists")

// 🚦 Action is the outcome of resolving an output location
type Action int

const (
	ActionProceed  Action = iota // nothing was there
	ActionCleared                // something was there and has been removed
	ActionRejected               // something is there and force was not given
)

// String returns a string representation of Action
func (a Action) String() string {
	switch a {
	case ActionProceed:
		return "proceed"
	case ActionCleared:
		return "cleared"
	case ActionRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Resolve checks path before anything is written to it. An existing path is
// removed recursively when force is set and rejected otherwise.
func Resolve(ctx context.Context, path string, force bool) (Action, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return ActionProceed, nil
		}
		return ActionRejected, errors.Errorf("checking output %s: %w", path, err)
	}

	if !force {
		return ActionRejected, errors.Errorf("%w: %s (use --force to overwrite)", ErrConflict, path)
	}

	if err := os.RemoveAll(path); err != nil {
		return ActionRejected, errors.Errorf("removing existing output %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Msg("cleared existing output")
	return ActionCleared, nil
}
