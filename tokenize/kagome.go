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

// Package tokenize implements a Japanese morphological tokenizer for the
// segment package using kagome.
package tokenize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/ianlewis/go-edict/segment"
)

var (
	// ErrUnknownDict indicates that the system dictionary name is not
	// supported.
	ErrUnknownDict = errors.New("unknown tokenizer dictionary")

	// ErrUnknownMode indicates that the tokenize mode is not supported.
	ErrUnknownMode = errors.New("unknown tokenize mode")
)

// System dictionary names.
const (
	// IPA is the IPA dictionary.
	IPA = "ipa"

	// UniDic is the UniDic dictionary.
	UniDic = "uni"
)

// Tokenize modes.
const (
	// Normal is regular segmentation.
	Normal = "normal"

	// Search splits long compound words into their parts.
	Search = "search"

	// Extended is Search mode with unknown words split into characters.
	Extended = "extended"
)

// Options are options for a Kagome tokenizer.
type Options struct {
	// Dict is the system dictionary name. Defaults to IPA.
	Dict string

	// Mode is the tokenize mode. Defaults to Normal.
	Mode string
}

// DefaultOptions is the default options for a Kagome tokenizer.
var DefaultOptions = &Options{
	Dict: IPA,
	Mode: Normal,
}

// Kagome is a tokenizer backed by kagome.
type Kagome struct {
	t    *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
}

// NewKagome returns a new kagome tokenizer. Loading the system dictionary
// takes a noticeable amount of time so tokenizers should be reused.
func NewKagome(options *Options) (*Kagome, error) {
	if options == nil {
		options = DefaultOptions
	}

	var d *dict.Dict
	switch strings.ToLower(options.Dict) {
	case "", IPA:
		d = ipa.Dict()
	case UniDic:
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDict, options.Dict)
	}

	var mode tokenizer.TokenizeMode
	switch strings.ToLower(options.Mode) {
	case "", Normal:
		mode = tokenizer.Normal
	case Search:
		mode = tokenizer.Search
	case Extended:
		mode = tokenizer.Extended
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, options.Mode)
	}

	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("creating tokenizer: %w", err)
	}

	return &Kagome{
		t:    t,
		mode: mode,
	}, nil
}

// Tokenize implements [segment.Tokenizer.Tokenize]. Token offsets are byte
// offsets into text.
func (k *Kagome) Tokenize(text string) []segment.Token {
	ktoks := k.t.Analyze(text, k.mode)

	tokens := make([]segment.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		// Position is the byte offset of the token in text.
		start, end := kt.Position, kt.Position+len(kt.Surface)
		if kt.Surface == "" || start < 0 || end > len(text) {
			continue
		}
		tokens = append(tokens, segment.Token{
			Surface: kt.Surface,
			Start:   start,
			End:     end,
		})
	}
	return tokens
}
