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

package status

// ❌ Failure is one unit that could not be processed
type Failure struct {
	Path string
	Err  error
}

// 📊 Summary counts the outcomes of a batch
type Summary struct {
	Total     int // files discovered
	Succeeded int // files written
	Bundled   int // written files whose engine result carried a bundle
	Failures  []Failure
}

// Failed returns the number of units that could not be processed.
func (s Summary) Failed() int {
	return len(s.Failures)
}

// OK reports whether every unit was processed.
func (s Summary) OK() bool {
	return len(s.Failures) == 0
}
