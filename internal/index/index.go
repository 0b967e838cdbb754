// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

// Index is a generic exact match hash index. Each key maps to the values
// added for it in insertion order.
//
// An Index is not safe for concurrent use while values are being added. Once
// construction is finished it may be read by multiple goroutines.
type Index[V comparable] struct {
	values map[string][]V
}

// New creates an empty index. sizeHint is the expected number of keys.
func New[V comparable](sizeHint int) *Index[V] {
	return &Index[V]{
		values: make(map[string][]V, sizeHint),
	}
}

// Add adds v to the values for key. Adding the value that was most recently
// added for key again is a no-op.
func (idx *Index[V]) Add(key string, v V) {
	vs := idx.values[key]
	if n := len(vs); n > 0 && vs[n-1] == v {
		return
	}
	idx.values[key] = append(vs, v)
}

// Get returns the value most recently added for key. Later values win over
// earlier ones.
func (idx *Index[V]) Get(key string) (V, bool) {
	vs := idx.values[key]
	if len(vs) == 0 {
		var zero V
		return zero, false
	}
	return vs[len(vs)-1], true
}

// Search returns all values added for key in insertion order.
func (idx *Index[V]) Search(key string) []V {
	vs := idx.values[key]
	if len(vs) == 0 {
		return nil
	}
	return vs[:len(vs):len(vs)]
}

// Len returns the number of distinct keys.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}
