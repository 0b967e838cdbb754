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

// Package folding implements folding of dictionary keys and queries.
package folding

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// ErrUnknownFolder indicates that a folder name is not supported.
var ErrUnknownFolder = errors.New("unknown folder")

// Names of the supported folders.
const (
	KanaName  = "kana"
	WidthName = "width"
	SpaceName = "space"
)

// New returns a new transformer for the named folder.
func New(name string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case KanaName:
		return KanaFolder{}, nil
	case WidthName:
		// Full width ASCII becomes narrow and half width katakana becomes
		// wide.
		return width.Fold, nil
	case SpaceName:
		// Dictionary keys never contain spaces.
		return runes.Remove(runes.Predicate(unicode.IsSpace)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFolder, name)
	}
}

// Chain returns a function that creates a transformer applying the named
// folders in order. An empty list of names returns nil.
func Chain(names []string) (func() transform.Transformer, error) {
	var clean []string
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		// Validate up front so the returned function cannot fail.
		if _, err := New(name); err != nil {
			return nil, err
		}
		clean = append(clean, name)
	}
	if len(clean) == 0 {
		return nil, nil
	}

	return func() transform.Transformer {
		ts := make([]transform.Transformer, 0, len(clean))
		for _, name := range clean {
			//nolint:errcheck // names are validated above.
			t, _ := New(name)
			ts = append(ts, t)
		}
		if len(ts) == 1 {
			return ts[0]
		}
		return transform.Chain(ts...)
	}, nil
}
