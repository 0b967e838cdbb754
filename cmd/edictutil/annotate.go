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
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-edict/segment"
	"github.com/ianlewis/go-edict/tokenize"
)

var annotateCommand = &cli.Command{
	Name:      "annotate",
	Usage:     "Split Japanese text into words and look each one up",
	ArgsUsage: "[TEXT]",
	Description: strings.Join([]string{
		"Annotates TEXT, or standard input if no TEXT is given, with",
		"dictionary entries.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "tokenizer",
			Usage: "tokenize with the system dictionary `NAME` (ipa, uni)",
			Value: tokenize.IPA,
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "tokenize in `MODE` (normal, search, extended)",
			Value: tokenize.Normal,
		},
		&cli.BoolFlag{
			Name:  "found",
			Usage: "only print words found in the dictionary",
		},
	},
	OnUsageError: func(_ *cli.Context, err error, _ bool) error {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	},
	Action: func(c *cli.Context) error {
		text := strings.Join(c.Args().Slice(), " ")
		if c.NArg() == 0 {
			b, err := io.ReadAll(c.App.Reader)
			if err != nil {
				return fmt.Errorf("%w: reading input: %w", ErrEdictutil, err)
			}
			text = string(b)
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		t, err := tokenize.NewKagome(&tokenize.Options{
			Dict: cfg.Tokenizer.Dict,
			Mode: cfg.Tokenizer.Mode,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}

		d, err := openEdict(c, cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		maxLen := cfg.MaxLen
		if maxLen == 0 {
			// Zero would select the pipeline default.
			maxLen = -1
		}
		p := segment.New(t, d, &segment.Options{
			MaxLen: maxLen,
		})

		tbl := table.New("Word", "Start", "End", "Entry").WithWriter(c.App.Writer)
		for a := range p.Annotate(text) {
			if strings.TrimSpace(a.Surface) == "" {
				continue
			}
			if !a.Found {
				if c.Bool("found") {
					continue
				}
				a.Entry = "-"
			}
			tbl.AddRow(a.Surface, a.Start, a.End, a.Entry)
		}
		tbl.Print()

		return nil
	},
}
