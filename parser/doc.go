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

// Package parser implements scanning of EDICT2 dictionary files.
//
// The first line of an EDICT2 file is a version banner. Every other line is
// one entry made of four parts:
//  1. One or more surface forms separated by ';'.
//  2. An optional bracketed list of readings separated by ';'.
//  3. Slash delimited glosses.
//  4. An entry id starting with the literal "/EntL".
//
// For example:
//
//	犬;いぬ [けん] /dog/EntL1234567X/
//
// The Scanner reports each entry as a byte range into the scanned buffer
// together with the surface forms and readings used as lookup keys.
package parser
