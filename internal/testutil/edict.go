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

package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// DefaultVersion is the banner written by MakeEdict.
const DefaultVersion = "？？？？ /EDICT, EDICT_SUB(P), EDICT2 Japanese-English Electronic Dictionary Files/Copyright Electronic Dictionary Research & Development Group - 2026/Created: 2026-10-18/"

// Compression is the compression of a dictionary file written by
// MakeTempEdict.
type Compression int

const (
	// None writes a plain text file.
	None Compression = iota

	// Gzip writes a gzip compressed file.
	Gzip

	// DictZip writes a dictzip compressed file.
	DictZip
)

// MakeEdictOptions are options for MakeTempEdict.
type MakeEdictOptions struct {
	// Ext is an optional file extension for the file. Defaults to '.gz'
	// for Gzip, '.dz' for DictZip and no extension otherwise.
	Ext string

	// Compression is the file compression.
	Compression Compression
}

// GetExt returns the file extension.
func (o *MakeEdictOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		switch o.Compression {
		case Gzip:
			return ".gz"
		case DictZip:
			return ".dz"
		case None:
		}
	}
	return ""
}

// MakeEdict creates the contents of an EDICT2 file with the default version
// banner followed by the given lines.
func MakeEdict(lines ...string) []byte {
	var b strings.Builder
	b.WriteString(DefaultVersion)
	b.WriteByte('\n')
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// MakeTempEdict writes data to a new file in a temporary directory and
// returns its path. The directory is removed when the test finishes.
func MakeTempEdict(t *testing.T, data []byte, opts *MakeEdictOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeEdictOptions{}
	}

	path := filepath.Join(t.TempDir(), "edict2"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch opts.Compression {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case None:
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// ReadFile reads the file at path.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// WriteFile writes data to the file at path.
func WriteFile(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
}
