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

package folding

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	// katakanaToHiragana is the distance between a katakana rune and the
	// matching hiragana rune.
	katakanaToHiragana = 0x60
)

// KanaFolder folds katakana into hiragana so that readings written in
// either script compare equal. Katakana without a hiragana counterpart
// (e.g. 'ヷ', 'ー', '・') is left as is.
type KanaFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (KanaFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if c == utf8.RuneError {
			// Copy invalid bytes through unchanged.
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}

		c = foldKana(c)
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (KanaFolder) Reset() {}

func foldKana(c rune) rune {
	switch {
	// ァ (U+30A1) through ヶ (U+30F6).
	case 0x30A1 <= c && c <= 0x30F6:
		return c - katakanaToHiragana
	// Iteration marks ヽ and ヾ.
	case c == 0x30FD || c == 0x30FE:
		return c - katakanaToHiragana
	default:
		return c
	}
}
