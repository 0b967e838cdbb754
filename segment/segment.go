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

// Package segment annotates tokens produced by a morphological tokenizer
// with dictionary entries.
package segment

import (
	"iter"
)

// DefaultMaxLen is the default maximum length in bytes of entry text.
const DefaultMaxLen = 512

// Token is a token produced by a Tokenizer.
type Token struct {
	// Surface is the token text as it appears in the input.
	Surface string

	// Start is the byte offset of the token in the input.
	Start int

	// End is the byte offset of the end of the token in the input.
	End int
}

// Tokenizer splits text into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// TokenizerFunc is an adapter to allow the use of ordinary functions as a
// Tokenizer.
type TokenizerFunc func(text string) []Token

// Tokenize implements [Tokenizer.Tokenize].
func (f TokenizerFunc) Tokenize(text string) []Token {
	return f(text)
}

// Dictionary looks up entry text by exact match. *edict.Edict implements
// Dictionary.
type Dictionary interface {
	Lookup(key string, maxLen int) (string, bool)
}

// AnnotatedToken is a token with its dictionary entry.
type AnnotatedToken struct {
	Token

	// Entry is the entry text. It is empty if Found is false.
	Entry string

	// Found is true if the token's surface form is in the dictionary.
	Found bool
}

// Options are options for a Pipeline.
type Options struct {
	// MaxLen is the maximum length in bytes of entry text. Zero means
	// DefaultMaxLen. A negative value does not limit the length.
	MaxLen int
}

// DefaultOptions is the default options for a Pipeline.
var DefaultOptions = &Options{
	MaxLen: DefaultMaxLen,
}

// Pipeline annotates text with dictionary entries. A Pipeline never
// modifies the dictionary and may be used concurrently if its Tokenizer
// can.
type Pipeline struct {
	tokenizer Tokenizer
	dict      Dictionary
	maxLen    int
}

// New returns a new Pipeline.
func New(t Tokenizer, d Dictionary, options *Options) *Pipeline {
	if options == nil {
		options = DefaultOptions
	}

	p := &Pipeline{
		tokenizer: t,
		dict:      d,
		maxLen:    options.MaxLen,
	}
	if p.maxLen == 0 {
		p.maxLen = DefaultMaxLen
	}
	return p
}

// Annotate returns the tokens of text paired with their dictionary entries
// in tokenizer order. The text is tokenized when iteration starts and every
// iteration starts over. Each token is looked up exactly once per
// iteration.
func (p *Pipeline) Annotate(text string) iter.Seq[AnnotatedToken] {
	return func(yield func(AnnotatedToken) bool) {
		for _, tok := range p.tokenizer.Tokenize(text) {
			entry, found := p.dict.Lookup(tok.Surface, p.maxLen)
			if !yield(AnnotatedToken{
				Token: tok,
				Entry: entry,
				Found: found,
			}) {
				return
			}
		}
	}
}

// AnnotateAll returns all annotated tokens of text.
func (p *Pipeline) AnnotateAll(text string) []AnnotatedToken {
	var tokens []AnnotatedToken
	for t := range p.Annotate(text) {
		tokens = append(tokens, t)
	}
	return tokens
}
