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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pair struct {
	key   string
	value int
}

func TestIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pairs    []pair
		query    string
		get      int
		found    bool
		search   []int
		distinct int
	}{
		{
			name:  "empty index",
			query: "foo",
		},
		{
			name: "single value",
			pairs: []pair{
				{"foo", 1},
				{"bar", 2},
			},
			query:    "foo",
			get:      1,
			found:    true,
			search:   []int{1},
			distinct: 2,
		},
		{
			name: "last value wins",
			pairs: []pair{
				{"foo", 1},
				{"bar", 2},
				{"foo", 3},
			},
			query:    "foo",
			get:      3,
			found:    true,
			search:   []int{1, 3},
			distinct: 2,
		},
		{
			name: "repeated value",
			pairs: []pair{
				{"foo", 1},
				{"foo", 1},
			},
			query:    "foo",
			get:      1,
			found:    true,
			search:   []int{1},
			distinct: 1,
		},
		{
			name: "no results",
			pairs: []pair{
				{"foo", 1},
				{"bar", 2},
			},
			query:    "none",
			distinct: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New[int](len(test.pairs))
			for _, p := range test.pairs {
				idx.Add(p.key, p.value)
			}

			got, found := idx.Get(test.query)
			if want := test.found; want != found {
				t.Errorf("Get found: want %v, got %v", want, found)
			}
			if want := test.get; want != got {
				t.Errorf("Get: want %d, got %d", want, got)
			}
			if diff := cmp.Diff(test.search, idx.Search(test.query)); diff != "" {
				t.Errorf("Search (-want, +got):\n%s", diff)
			}
			if want, got := test.distinct, idx.Len(); want != got {
				t.Errorf("Len: want %d, got %d", want, got)
			}
		})
	}
}
