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

// Package edict implements a library for loading EDICT2 Japanese-English
// dictionaries into memory and looking up words by exact match in pure Go.
//
// An EDICT2 file is a single UTF-8 text file:
//  1. The first line is a version banner and is ignored.
//  2. Every following line is one entry listing its surface forms, its
//     readings, slash delimited glosses and an entry id, e.g.
//     "犬;いぬ [けん] /dog/EntL1234567X/".
//
// The whole file is kept in memory. Entries refer to byte ranges of the
// file rather than copies of their text. Every surface form and reading is
// a lookup key for the entry's text.
//
// The file may be compressed with gzip (.gz) or dictzip (.dz).
//
// More info on the dictionary format can be found at this URL:
// https://www.edrdg.org/jmdict/edict_doc.html
package edict
