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

package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-edict/parser"
)

// scanned is an entry with its text resolved for comparison.
type scanned struct {
	Surfaces []string
	Readings []string
	Text     string
	Line     int
}

func scanAll(t *testing.T, data string, opts *parser.ScannerOptions) ([]scanned, *parser.Scanner) {
	t.Helper()

	buf := []byte(data)
	s := parser.NewScanner(buf, opts)
	var got []scanned
	for s.Scan() {
		e := s.Entry()
		got = append(got, scanned{
			Surfaces: e.Surfaces,
			Readings: e.Readings,
			Text:     string(buf[e.Start:e.End]),
			Line:     e.Line,
		})
	}
	return got, s
}

// TestScanner tests Scanner on well formed data.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		opts     *parser.ScannerOptions
		version  string
		expected []scanned
	}{
		{
			name:    "header only",
			data:    "VersionInfo\n",
			version: "VersionInfo",
		},
		{
			name: "single entry",
			data: "VersionInfo\n猫 [ねこ] /cat/EntL7654321X/\n",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"猫"},
					Readings: []string{"ねこ"},
					Text:     "猫 [ねこ] /cat/EntL7654321X/",
					Line:     2,
				},
			},
		},
		{
			name: "multiple surface forms and readings",
			data: "VersionInfo\n犬;いぬ [けん;いぬっころ] /dog/EntL1234567X/\n",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"犬", "いぬ"},
					Readings: []string{"けん", "いぬっころ"},
					Text:     "犬;いぬ [けん;いぬっころ] /dog/EntL1234567X/",
					Line:     2,
				},
			},
		},
		{
			name: "no reading",
			data: "VersionInfo\nアイス /(n) ice/EntL1000050X/\n",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"アイス"},
					Text:     "アイス /(n) ice/EntL1000050X/",
					Line:     2,
				},
			},
		},
		{
			name: "slashes in glosses",
			data: "VersionInfo\n和 [わ] /(n) harmony/peace/sum/EntL1000000/\n",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"和"},
					Readings: []string{"わ"},
					Text:     "和 [わ] /(n) harmony/peace/sum/EntL1000000/",
					Line:     2,
				},
			},
		},
		{
			name: "surface form after reading",
			data: "VersionInfo\n日本 [にほん] 日本国 /Japan/EntL1582710X/\n",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"日本", "日本国"},
					Readings: []string{"にほん"},
					Text:     "日本 [にほん] 日本国 /Japan/EntL1582710X/",
					Line:     2,
				},
			},
		},
		{
			name: "crlf and blank lines",
			data: "VersionInfo\r\n\r\n猫 [ねこ] /cat/EntL7654321X/\r\n\n",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"猫"},
					Readings: []string{"ねこ"},
					Text:     "猫 [ねこ] /cat/EntL7654321X/",
					Line:     3,
				},
			},
		},
		{
			name: "only spaces skipped in words",
			data: "VersionInfo\n 猫 \t[ ね こ ] /cat/EntL7654321X/\n \t\n",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"猫\t"},
					Readings: []string{"ねこ"},
					Text:     "猫 \t[ ね こ ] /cat/EntL7654321X/",
					Line:     2,
				},
			},
		},
		{
			name: "no final newline",
			data: "VersionInfo\n猫 [ねこ] /cat/EntL7654321X/",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"猫"},
					Readings: []string{"ねこ"},
					Text:     "猫 [ねこ] /cat/EntL7654321X/",
					Line:     2,
				},
			},
		},
		{
			name: "annotations kept",
			data: "VersionInfo\n日本(P) [にほん(P);にっぽん] /Japan/EntL1582710X/\n",

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"日本(P)"},
					Readings: []string{"にほん(P)", "にっぽん"},
					Text:     "日本(P) [にほん(P);にっぽん] /Japan/EntL1582710X/",
					Line:     2,
				},
			},
		},
		{
			name: "annotations stripped",
			data: "VersionInfo\n日本(P) [にほん(P);にっぽん] /Japan/EntL1582710X/\n",
			opts: &parser.ScannerOptions{
				StripAnnotations: true,
			},

			version: "VersionInfo",
			expected: []scanned{
				{
					Surfaces: []string{"日本"},
					Readings: []string{"にほん", "にっぽん"},
					Text:     "日本(P) [にほん(P);にっぽん] /Japan/EntL1582710X/",
					Line:     2,
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, s := scanAll(t, test.data, test.opts)
			if err := s.Err(); err != nil {
				t.Fatalf("Err: %v", err)
			}
			if diff := cmp.Diff(test.version, s.Version()); diff != "" {
				t.Errorf("Version (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("entries (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestScanner_errors tests Scanner on malformed data.
func TestScanner_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		opts     *parser.ScannerOptions
		expected []error
	}{
		{
			name:     "empty",
			data:     "",
			expected: []error{parser.ErrTruncated},
		},
		{
			name:     "header without newline",
			data:     "VersionInfo",
			expected: []error{parser.ErrTruncated},
		},
		{
			name:     "truncated in definition",
			data:     "VersionInfo\n猫 [ねこ] /ca",
			expected: []error{parser.ErrTruncated},
		},
		{
			name:     "newline in definition",
			data:     "VersionInfo\n猫 [ねこ] /cat/\n",
			expected: []error{parser.ErrFormat},
		},
		{
			name:     "newline in reading",
			data:     "VersionInfo\n猫 [ねこ\n",
			expected: []error{parser.ErrFormat},
		},
		{
			name:     "newline in surface form",
			data:     "VersionInfo\n猫\n",
			expected: []error{parser.ErrFormat},
		},
		{
			name:     "no surface form",
			data:     "VersionInfo\n[ねこ] /cat/EntL7654321X/\n",
			expected: []error{parser.ErrFormat, parser.ErrNoSurfaceForm},
		},
		{
			name: "word too long",
			data: "VersionInfo\n" + strings.Repeat("猫", 4) + " /cat/EntL7654321X/\n",
			opts: &parser.ScannerOptions{
				MaxWordLen: 6,
			},
			expected: []error{parser.ErrFormat, parser.ErrWordTooLong},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, s := scanAll(t, test.data, test.opts)
			if len(got) != 0 {
				t.Errorf("unexpected entries: %v", got)
			}
			err := s.Err()
			if err == nil {
				t.Fatal("expected error")
			}
			for _, want := range test.expected {
				if !errors.Is(err, want) {
					t.Errorf("Err: want %v, got %v", want, err)
				}
			}
		})
	}
}

// TestScanner_FormatError tests the position reported by FormatError.
func TestScanner_FormatError(t *testing.T) {
	t.Parallel()

	_, s := scanAll(t, "VersionInfo\n猫 [ねこ] /cat/EntL7654321X/\n犬 [いぬ /dog/\n", nil)

	var fErr *parser.FormatError
	if !errors.As(s.Err(), &fErr) {
		t.Fatalf("Err: want *FormatError, got %#v", s.Err())
	}
	if want, got := 3, fErr.Line; want != got {
		t.Errorf("Line: want %d, got %d", want, got)
	}
	if want, got := parser.Reading, fErr.State; want != got {
		t.Errorf("State: want %v, got %v", want, got)
	}
}

// TestScanner_SkipMalformed tests that malformed lines are dropped whole.
func TestScanner_SkipMalformed(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		"VersionInfo",
		"犬;いぬ [けん] /dog/EntL1234567X/",
		"鳥 [とり] /bird/",
		strings.Repeat("魚", 10) + " /fish/EntL1111111X/",
		"猫 [ねこ] /cat/EntL7654321X/",
		"",
	}, "\n")

	got, s := scanAll(t, data, &parser.ScannerOptions{
		MaxWordLen:    12,
		SkipMalformed: true,
	})
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	expected := []scanned{
		{
			Surfaces: []string{"犬", "いぬ"},
			Readings: []string{"けん"},
			Text:     "犬;いぬ [けん] /dog/EntL1234567X/",
			Line:     2,
		},
		{
			Surfaces: []string{"猫"},
			Readings: []string{"ねこ"},
			Text:     "猫 [ねこ] /cat/EntL7654321X/",
			Line:     5,
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("entries (-want, +got):\n%s", diff)
	}

	var lines []int
	for _, fErr := range s.Skipped() {
		lines = append(lines, fErr.Line)
	}
	if diff := cmp.Diff([]int{3, 4}, lines); diff != "" {
		t.Errorf("Skipped (-want, +got):\n%s", diff)
	}
	if !errors.Is(s.Skipped()[1], parser.ErrWordTooLong) {
		t.Errorf("Skipped()[1]: want %v, got %v", parser.ErrWordTooLong, s.Skipped()[1])
	}
}
