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

package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/jscrack/pkg/engine"
	"github.com/walteh/jscrack/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 💾 Writer materializes engine results to disk or to its Stdout
type Writer struct {
	Stdout io.Writer
}

// 🏭 NewWriter creates a writer that prints to stdout when no destination is given
func NewWriter(stdout io.Writer) *Writer {
	return &Writer{Stdout: stdout}
}

// Materialize writes result to dest, or prints its code when dest is empty.
// A bundle is persisted next to dest; it is never printed.
func (w *Writer) Materialize(ctx context.Context, result *engine.Result, dest string) error {
	logger := zerolog.Ctx(ctx)

	if result == nil {
		return errors.New("nil result")
	}

	if dest == "" {
		if _, err := fmt.Fprintln(w.Stdout, result.Code); err != nil {
			return errors.Errorf("printing result: %w", err)
		}
		if result.HasBundle() {
			log.FromContext(ctx).Warning("modules are not displayed in the terminal, use the --output option to save them to a directory")
		}
		return nil
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	if err := writeFileAtomic(dest, []byte(result.Code)); err != nil {
		return errors.Errorf("writing %s: %w", dest, err)
	}

	if result.HasBundle() {
		if err := result.Bundle.Persist(ctx, dir); err != nil {
			return errors.Errorf("saving bundle to %s: %w", dir, err)
		}
	}

	logger.Debug().Str("path", dest).Bool("bundle", result.HasBundle()).Msg("materialized result")
	return nil
}

// writeFileAtomic writes through a sibling temp file and renames it into place
func writeFileAtomic(path string, content []byte) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
