// Copyright 2026 Ian Lewis
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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-edict/segment"
	"github.com/ianlewis/go-edict/tokenize"
)

// config holds the settings shared by all commands. Values come from the
// YAML config file and are overridden by flags that are set explicitly.
//
// Example config file:
//
//	dict: /usr/share/edict/edict2.gz
//	fold: [width, kana]
//	strip_annotations: true
//	max_len: 256
//	tokenizer:
//	  dict: uni
//	  mode: search
type config struct {
	Dict             string          `yaml:"dict"`
	Fold             []string        `yaml:"fold"`
	MaxLen           int             `yaml:"max_len"`
	MMap             bool            `yaml:"mmap"`
	SkipMalformed    bool            `yaml:"skip_malformed"`
	StripAnnotations bool            `yaml:"strip_annotations"`
	LogLevel         string          `yaml:"log_level"`
	Tokenizer        tokenizerConfig `yaml:"tokenizer"`
}

type tokenizerConfig struct {
	Dict string `yaml:"dict"`
	Mode string `yaml:"mode"`
}

func defaultConfig() *config {
	return &config{
		MaxLen:   segment.DefaultMaxLen,
		LogLevel: "warn",
		Tokenizer: tokenizerConfig{
			Dict: tokenize.IPA,
			Mode: tokenize.Normal,
		},
	}
}

// readConfig decodes a YAML config from r on top of cfg. Unknown keys are
// an error.
func readConfig(r io.Reader, cfg *config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decoding config: %w", ErrFlagParse, err)
	}
	return nil
}

// loadConfig builds the config for a command from the config file, flags
// and the default dictionary locations.
func loadConfig(c *cli.Context) (*config, error) {
	cfg := defaultConfig()

	if path := c.String("config"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: opening config: %w", ErrEdictutil, err)
		}
		defer f.Close()

		if err := readConfig(f, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if c.IsSet("dict") {
		cfg.Dict = c.String("dict")
	}
	if c.IsSet("fold") {
		cfg.Fold = c.StringSlice("fold")
	}
	if c.IsSet("max-len") {
		cfg.MaxLen = c.Int("max-len")
	}
	if c.IsSet("mmap") {
		cfg.MMap = c.Bool("mmap")
	}
	if c.IsSet("skip-malformed") {
		cfg.SkipMalformed = c.Bool("skip-malformed")
	}
	if c.IsSet("strip-annotations") {
		cfg.StripAnnotations = c.Bool("strip-annotations")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("tokenizer") {
		cfg.Tokenizer.Dict = c.String("tokenizer")
	}
	if c.IsSet("mode") {
		cfg.Tokenizer.Mode = c.String("mode")
	}

	if cfg.Dict == "" {
		cfg.Dict = findDict(dictLocations())
	}

	return cfg, nil
}
