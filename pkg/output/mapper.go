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
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// MapPath places file under outputRoot at the same position it has under
// inputRoot.
func MapPath(inputRoot, outputRoot, file string) (string, error) {
	rel, err := filepath.Rel(inputRoot, file)
	if err != nil {
		return "", errors.Errorf("relativizing %s: %w", file, err)
	}
	if !filepath.IsLocal(rel) {
		return "", errors.Errorf("%s is not inside %s", file, inputRoot)
	}
	return filepath.Join(outputRoot, rel), nil
}
