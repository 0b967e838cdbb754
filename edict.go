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

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"
	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-edict/internal/index"
	"github.com/ianlewis/go-edict/parser"
)

var (
	// ErrEdict is a parent error for all errors returned by this package.
	ErrEdict = errors.New("edict")

	// ErrIO indicates that the dictionary could not be opened or read in
	// full. A truncated file is reported as ErrIO.
	ErrIO = fmt.Errorf("%w: reading dictionary", ErrEdict)

	// ErrFormat indicates that a dictionary line does not follow the EDICT2
	// grammar.
	ErrFormat = parser.ErrFormat
)

// keysPerLine is a rough number of keys per dictionary line used to size
// the index.
const keysPerLine = 2

// Options are options for loading a dictionary.
type Options struct {
	// MaxWordLen is the maximum length in bytes of a surface form or
	// reading. Zero means parser.DefaultMaxWordLen.
	MaxWordLen int

	// SkipMalformed drops malformed lines instead of failing the load.
	// Dropped lines are available from Edict.Skipped.
	SkipMalformed bool

	// StripAnnotations removes parenthesized tags such as "(P)" from keys.
	StripAnnotations bool

	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// kana folding, width folding, etc.) on keys and queries. A nil Folder
	// disables folding.
	Folder func() transform.Transformer

	// MMap memory maps uncompressed dictionary files instead of reading
	// them into memory. The mapping is released once neither the Edict nor
	// any Entry from it is reachable.
	MMap bool

	// Logger receives load progress and skipped lines. Nothing is logged if
	// Logger is nil.
	Logger *slog.Logger
}

// DefaultOptions is the default options for loading a dictionary.
var DefaultOptions = &Options{
	MaxWordLen: parser.DefaultMaxWordLen,
}

// Edict is an in-memory EDICT2 dictionary. An Edict is safe for concurrent
// use by multiple goroutines except for Close.
type Edict struct {
	// data is the raw dictionary file. Entries refer to it.
	data []byte

	// mm is set when data is memory mapped.
	mm *mapping

	index *index.Index[*Entry]

	folder  func() transform.Transformer
	version string
	entries int
	skipped []*parser.FormatError
}

// Open loads the dictionary at path. Paths ending in .gz are decompressed
// with gzip and paths ending in .dz are decompressed with dictzip.
func Open(path string, options *Options) (*Edict, error) {
	if options == nil {
		options = DefaultOptions
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrIO, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrIO, path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrIO, path, err)
		}
		defer z.Close()
		r = z
	default:
		if options.MMap {
			return openMMap(f, options)
		}
	}

	e, err := New(r, options)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return e, nil
}

func openMMap(f *os.File, options *Options) (*Edict, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if info.Size() == 0 {
		// Empty files cannot be mapped.
		return load(nil, nil, options)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: mapping %q: %w", ErrIO, f.Name(), err)
	}
	m := newMapping(mm)

	e, err := load(mm, m, options)
	if err != nil {
		_ = m.release()
		return nil, fmt.Errorf("loading %q: %w", f.Name(), err)
	}
	return e, nil
}

// mapping owns memory mapped dictionary data. Every Entry that points into
// the data holds the mapping so it is only unmapped once unreachable.
type mapping struct {
	mm mmap.MMap
}

func newMapping(mm mmap.MMap) *mapping {
	m := &mapping{mm: mm}
	runtime.SetFinalizer(m, func(m *mapping) {
		_ = m.mm.Unmap()
	})
	return m
}

// release unmaps the data immediately. It must only be called when nothing
// refers to the data.
func (m *mapping) release() error {
	runtime.SetFinalizer(m, nil)
	if err := m.mm.Unmap(); err != nil {
		return fmt.Errorf("%w: unmapping dictionary: %w", ErrEdict, err)
	}
	return nil
}

// New loads a dictionary by reading all data from r.
func New(r io.Reader, options *Options) (*Edict, error) {
	if options == nil {
		options = DefaultOptions
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return load(data, nil, options)
}

// load parses data and builds the index. m is the mapping that owns data
// if it is memory mapped. No Edict is returned on error.
func load(data []byte, m *mapping, options *Options) (*Edict, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	start := time.Now()
	logger.Debug("loading dictionary", "bytes", len(data))

	s := parser.NewScanner(data, &parser.ScannerOptions{
		MaxWordLen:       options.MaxWordLen,
		SkipMalformed:    options.SkipMalformed,
		StripAnnotations: options.StripAnnotations,
	})

	e := &Edict{
		data:   data,
		mm:     m,
		index:  index.New[*Entry](bytes.Count(data, []byte{'\n'}) * keysPerLine),
		folder: options.Folder,
	}

	for s.Scan() {
		pe := s.Entry()
		entry := &Entry{
			surfaces: pe.Surfaces,
			readings: pe.Readings,
			text:     data[pe.Start:pe.End:pe.End],
			line:     pe.Line,
			mm:       m,
		}
		for _, words := range [][]string{pe.Surfaces, pe.Readings} {
			for _, w := range words {
				key, err := e.fold(w)
				if err != nil {
					return nil, fmt.Errorf("folding %q on line %d: %w", w, pe.Line, err)
				}
				e.index.Add(key, entry)
			}
		}
		e.entries++
	}
	if err := s.Err(); err != nil {
		if errors.Is(err, parser.ErrTruncated) {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}

	e.version = s.Version()
	e.skipped = s.Skipped()
	for _, fErr := range e.skipped {
		logger.Warn("skipped malformed line", "line", fErr.Line, "error", fErr)
	}
	logger.Info("loaded dictionary",
		"entries", e.entries,
		"keys", e.index.Len(),
		"skipped", len(e.skipped),
		"duration", time.Since(start),
	)

	return e, nil
}

// fold applies the folder to s.
func (e *Edict) fold(s string) (string, error) {
	if e.folder == nil {
		return s, nil
	}
	folded, _, err := transform.String(e.folder(), s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEdict, err)
	}
	return folded, nil
}

// Query returns the entry for the given surface form or reading. When
// several entries share the key the one found last in the file is
// returned. A miss returns false.
func (e *Edict) Query(key string) (*Entry, bool) {
	if e.index == nil {
		return nil, false
	}
	folded, err := e.fold(key)
	if err != nil {
		return nil, false
	}
	return e.index.Get(folded)
}

// Search returns all entries for the given surface form or reading in file
// order.
func (e *Edict) Search(key string) []*Entry {
	if e.index == nil {
		return nil
	}
	folded, err := e.fold(key)
	if err != nil {
		return nil
	}
	return e.index.Search(folded)
}

// Lookup returns the text of the entry for the given key. The text ends at
// the first newline and is at most maxLen bytes long without splitting a
// UTF-8 sequence. A maxLen of zero or less does not limit the length. A
// miss returns false.
func (e *Edict) Lookup(key string, maxLen int) (string, bool) {
	entry, ok := e.Query(key)
	if !ok {
		return "", false
	}
	text := string(bound(entry.text, maxLen))
	runtime.KeepAlive(entry)
	return text, true
}

// bound truncates b at the first newline and to at most maxLen bytes.
func bound(b []byte, maxLen int) []byte {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}
	if maxLen <= 0 || len(b) <= maxLen {
		return b
	}
	b = b[:maxLen]
	// Drop a trailing partial rune.
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				b = b[:i]
			}
			break
		}
	}
	return b
}

// Version returns the dictionary's version banner.
func (e *Edict) Version() string {
	return e.version
}

// EntryCount returns the number of entries in the dictionary.
func (e *Edict) EntryCount() int {
	return e.entries
}

// KeyCount returns the number of distinct lookup keys.
func (e *Edict) KeyCount() int {
	if e.index == nil {
		return 0
	}
	return e.index.Len()
}

// Skipped returns the malformed lines dropped when Options.SkipMalformed is
// set.
func (e *Edict) Skipped() []*parser.FormatError {
	return e.skipped
}

// Close releases the dictionary data. Queries after Close miss. Entries
// returned before Close stay valid; memory mapped data is unmapped once the
// last of them is unreachable.
func (e *Edict) Close() error {
	e.index = nil
	e.data = nil
	e.mm = nil
	return nil
}
