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
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📦 FileBundle is an in-memory set of module files keyed by slash-separated
// relative path.
type FileBundle struct {
	files map[string][]byte
}

// 🏭 NewFileBundle creates a bundle from relative path to content
func NewFileBundle(files map[string][]byte) *FileBundle {
	return &FileBundle{files: files}
}

// Paths returns the bundle's relative paths in sorted order.
func (b *FileBundle) Paths() []string {
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Persist implements Bundle.
func (b *FileBundle) Persist(ctx context.Context, dir string) error {
	logger := zerolog.Ctx(ctx)

	for _, rel := range b.Paths() {
		local := filepath.FromSlash(rel)
		if !filepath.IsLocal(local) {
			return errors.Errorf("bundle path %q escapes %s", rel, dir)
		}

		dst := filepath.Join(dir, local)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return errors.Errorf("creating parent directories: %w", err)
		}
		if err := os.WriteFile(dst, b.files[rel], 0644); err != nil {
			return errors.Errorf("writing module %s: %w", rel, err)
		}

		logger.Debug().Str("module", dst).Msg("wrote bundle module")
	}

	return nil
}
