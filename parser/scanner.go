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

package parser

import (
	"bytes"
	"errors"
	"fmt"
)

// DefaultMaxWordLen is the default maximum length in bytes of a single
// surface form or reading.
const DefaultMaxWordLen = 1024

// entryIDMarker marks the start of the entry id at the end of a line.
var entryIDMarker = []byte("/EntL")

var (
	// ErrFormat indicates that a line does not follow the EDICT2 grammar.
	ErrFormat = errors.New("malformed entry")

	// ErrWordTooLong indicates that a surface form or reading is longer than
	// the maximum word length.
	ErrWordTooLong = errors.New("word too long")

	// ErrNoSurfaceForm indicates that a line has no surface forms.
	ErrNoSurfaceForm = errors.New("missing surface form")

	// ErrTruncated indicates that the data ended in the middle of a line or
	// before the version banner was complete.
	ErrTruncated = errors.New("truncated dictionary")
)

// State is a state of the line scanner.
type State int

const (
	// VersionHeader is the state while reading the first line.
	VersionHeader State = iota

	// SurfaceForm is the state while reading surface forms.
	SurfaceForm

	// Reading is the state while reading the bracketed readings.
	Reading

	// Definition is the state while skipping over glosses.
	Definition

	// EntryID is the state after the entry id marker.
	EntryID
)

// String implements [fmt.Stringer.String].
func (s State) String() string {
	switch s {
	case VersionHeader:
		return "version header"
	case SurfaceForm:
		return "surface form"
	case Reading:
		return "reading"
	case Definition:
		return "definition"
	case EntryID:
		return "entry id"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FormatError describes a line that could not be parsed.
type FormatError struct {
	// Line is the 1-based line number.
	Line int

	// Offset is the byte offset in the buffer where the error was detected.
	Offset int

	// State is the scanner state at the time of the error.
	State State

	// Err is the underlying cause, if any.
	Err error
}

// Error implements [error.Error].
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %v: %v in %v", e.Line, ErrFormat, e.Err, e.State)
	}
	return fmt.Sprintf("line %d: %v: unexpected end of line in %v", e.Line, ErrFormat, e.State)
}

// Unwrap returns ErrFormat and the underlying cause.
func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFormat, e.Err}
	}
	return []error{ErrFormat}
}

// Entry is a single dictionary line.
type Entry struct {
	// Surfaces are the entry's surface forms in line order.
	Surfaces []string

	// Readings are the entry's readings in line order.
	Readings []string

	// Start is the offset of the first surface form in the buffer.
	Start int

	// End is the offset of the end of the line, excluding the newline.
	End int

	// Line is the 1-based line number.
	Line int
}

// ScannerOptions are options for scanning an EDICT2 buffer.
type ScannerOptions struct {
	// MaxWordLen is the maximum length in bytes of a surface form or
	// reading. Zero means DefaultMaxWordLen.
	MaxWordLen int

	// SkipMalformed drops lines that do not follow the grammar instead of
	// stopping the scan. Dropped lines are reported by Skipped.
	SkipMalformed bool

	// StripAnnotations removes parenthesized tags such as "(P)" or "(iK)"
	// from surface forms and readings.
	StripAnnotations bool
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	MaxWordLen: DefaultMaxWordLen,
}

// Scanner scans an EDICT2 buffer from start to end. The Scanner never
// modifies the buffer and Entry offsets refer to it.
type Scanner struct {
	buf  []byte
	opts ScannerOptions

	// pos is the offset of the start of the next line.
	pos  int
	line int

	header  bool
	version string

	// word is the pending word. Its capacity is fixed to opts.MaxWordLen.
	word []byte

	entry   *Entry
	skipped []*FormatError
	err     error
}

// NewScanner returns a new Scanner over buf.
func NewScanner(buf []byte, options *ScannerOptions) *Scanner {
	if options == nil {
		options = DefaultScannerOptions
	}

	s := &Scanner{
		buf:  buf,
		opts: *options,
	}
	if s.opts.MaxWordLen <= 0 {
		s.opts.MaxWordLen = DefaultMaxWordLen
	}
	s.word = make([]byte, 0, s.opts.MaxWordLen)
	return s
}

// Scan advances the scanner to the next entry. It returns false if the scan
// stops either by reaching the end of the buffer or an error.
func (s *Scanner) Scan() bool {
	s.entry = nil
	if s.err != nil {
		return false
	}

	if !s.header {
		if err := s.scanHeader(); err != nil {
			s.err = err
			return false
		}
	}

	for s.pos < len(s.buf) {
		e, err := s.scanLine()
		if err != nil {
			var fErr *FormatError
			if s.opts.SkipMalformed && errors.As(err, &fErr) {
				s.skipped = append(s.skipped, fErr)
				continue
			}
			s.err = err
			return false
		}
		if e == nil {
			// Blank line.
			continue
		}
		s.entry = e
		return true
	}

	return false
}

// Entry returns the most recent entry found by Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Version returns the version banner. It is empty until the first call to
// Scan.
func (s *Scanner) Version() string {
	return s.version
}

// Skipped returns the malformed lines dropped when SkipMalformed is set.
func (s *Scanner) Skipped() []*FormatError {
	return s.skipped
}

func (s *Scanner) scanHeader() error {
	i := bytes.IndexByte(s.buf, '\n')
	if i < 0 {
		return fmt.Errorf("%w: missing version header", ErrTruncated)
	}
	s.version = string(bytes.TrimSuffix(s.buf[:i], []byte{'\r'}))
	s.pos = i + 1
	s.line = 1
	s.header = true
	return nil
}

// scanLine scans the line starting at s.pos and advances s.pos past it. It
// returns a nil Entry for blank lines.
func (s *Scanner) scanLine() (*Entry, error) {
	s.line++
	s.word = s.word[:0]

	state := SurfaceForm
	start := -1
	var surfaces, readings []string

	for i := s.pos; i < len(s.buf); i++ {
		c := s.buf[i]
		if c == '\n' {
			s.pos = i + 1
			switch {
			case state == EntryID:
				return s.newEntry(surfaces, readings, start, i, i)
			case state == SurfaceForm && start < 0:
				return nil, nil
			}
			return nil, &FormatError{Line: s.line, Offset: i, State: state}
		}

		var err error
		switch state {
		case SurfaceForm:
			if start < 0 && !isBlank(c) {
				start = i
			}
			switch c {
			case ';':
				surfaces = s.commit(surfaces)
			case '[':
				surfaces = s.commit(surfaces)
				state = Reading
			case '/':
				surfaces = s.commit(surfaces)
				state = Definition
			default:
				err = s.accumulate(c)
			}
		case Reading:
			switch c {
			case ';':
				readings = s.commit(readings)
			case ']':
				readings = s.commit(readings)
				state = SurfaceForm
			default:
				err = s.accumulate(c)
			}
		case Definition:
			// Glosses are not indexed. Only look for the entry id marker.
			if c == '/' && bytes.HasPrefix(s.buf[i:], entryIDMarker) {
				state = EntryID
			}
		case EntryID, VersionHeader:
		}

		if err != nil {
			s.skipLine(i)
			return nil, &FormatError{Line: s.line, Offset: i, State: state, Err: err}
		}
	}

	// The buffer ended without a final newline.
	s.pos = len(s.buf)
	switch {
	case state == EntryID:
		return s.newEntry(surfaces, readings, start, len(s.buf), len(s.buf))
	case state == SurfaceForm && start < 0:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: line %d ends in %v", ErrTruncated, s.line, state)
}

func (s *Scanner) newEntry(surfaces, readings []string, start, end, offset int) (*Entry, error) {
	if len(surfaces) == 0 {
		return nil, &FormatError{Line: s.line, Offset: offset, State: EntryID, Err: ErrNoSurfaceForm}
	}
	if end > start && s.buf[end-1] == '\r' {
		end--
	}
	return &Entry{
		Surfaces: surfaces,
		Readings: readings,
		Start:    start,
		End:      end,
		Line:     s.line,
	}, nil
}

// accumulate appends c to the pending word. Spaces are skipped.
func (s *Scanner) accumulate(c byte) error {
	if c == ' ' {
		return nil
	}
	if len(s.word) >= s.opts.MaxWordLen {
		return fmt.Errorf("%w: exceeds %d bytes", ErrWordTooLong, s.opts.MaxWordLen)
	}
	s.word = append(s.word, c)
	return nil
}

// commit appends the pending word to words and resets it. Empty words are
// not committed.
func (s *Scanner) commit(words []string) []string {
	w := s.word
	if s.opts.StripAnnotations {
		w = stripAnnotations(w)
	}
	if len(w) > 0 {
		words = append(words, string(w))
	}
	s.word = s.word[:0]
	return words
}

// skipLine advances s.pos past the end of the line containing offset i.
func (s *Scanner) skipLine(i int) {
	if j := bytes.IndexByte(s.buf[i:], '\n'); j >= 0 {
		s.pos = i + j + 1
		return
	}
	s.pos = len(s.buf)
}

// stripAnnotations removes parenthesized spans from w in place.
func stripAnnotations(w []byte) []byte {
	if bytes.IndexByte(w, '(') < 0 {
		return w
	}
	out := w[:0]
	depth := 0
	for _, c := range w {
		switch {
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case depth == 0:
			out = append(out, c)
		}
	}
	return out
}

// isBlank reports whether c may appear on an otherwise blank line.
func isBlank(c byte) bool {
	return c == ' ' || c == '\r' || c == '\t'
}
