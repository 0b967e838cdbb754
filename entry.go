// Copyright 2021 Google LLC
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

package edict

import "runtime"

// Entry is a dictionary entry.
type Entry struct {
	surfaces []string
	readings []string

	// text is a view into the dictionary's raw data. It never includes the
	// line's newline.
	text []byte

	line int

	// mm keeps memory mapped data alive while the entry is reachable.
	mm *mapping
}

// Surfaces returns the entry's surface forms.
func (e *Entry) Surfaces() []string {
	return e.surfaces
}

// Readings returns the entry's readings.
func (e *Entry) Readings() []string {
	return e.readings
}

// Text returns the full text of the entry's line.
func (e *Entry) Text() string {
	text := string(e.text)
	runtime.KeepAlive(e)
	return text
}

// Line returns the line number of the entry in the dictionary file.
func (e *Entry) Line() int {
	return e.line
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	return e.Text()
}
