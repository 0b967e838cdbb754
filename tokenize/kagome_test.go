// Copyright 2026 Ian Lewis
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

package tokenize_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ianlewis/go-edict/tokenize"
)

func TestNewKagome_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     *tokenize.Options
		expected error
	}{
		{
			name:     "unknown dict",
			opts:     &tokenize.Options{Dict: "neologd"},
			expected: tokenize.ErrUnknownDict,
		},
		{
			name:     "unknown mode",
			opts:     &tokenize.Options{Mode: "fast"},
			expected: tokenize.ErrUnknownMode,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := tokenize.NewKagome(test.opts)
			if !errors.Is(err, test.expected) {
				t.Fatalf("NewKagome: want %v, got %v", test.expected, err)
			}
		})
	}
}

func TestKagome_Tokenize(t *testing.T) {
	t.Parallel()

	k, err := tokenize.NewKagome(nil)
	if err != nil {
		t.Fatalf("NewKagome: %v", err)
	}

	for _, text := range []string{
		"犬は猫が好き",
		"すもももももももものうち。",
		"日本語 と English",
		"犬  犬\n\n猫。猫",
		" 　犬",
		"",
	} {
		t.Run(text, func(t *testing.T) {
			tokens := k.Tokenize(text)

			var b strings.Builder
			pos := 0
			for _, tok := range tokens {
				if tok.Start < pos {
					t.Fatalf("token %q starts at %d before %d", tok.Surface, tok.Start, pos)
				}
				if got := text[tok.Start:tok.End]; got != tok.Surface {
					t.Errorf("text[%d:%d]: want %q, got %q", tok.Start, tok.End, tok.Surface, got)
				}
				b.WriteString(tok.Surface)
				pos = tok.End
			}

			// Only whitespace may be dropped by the tokenizer.
			want := strings.Join(strings.Fields(text), "")
			got := strings.Join(strings.Fields(b.String()), "")
			if want != got {
				t.Errorf("surfaces: want %q, got %q", want, got)
			}
		})
	}
}
