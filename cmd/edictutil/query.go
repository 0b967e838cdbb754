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

	"github.com/urfave/cli/v2"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Look up words in the dictionary",
	ArgsUsage: "WORD...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "all",
			Usage:   "print every entry for each word instead of the last one",
			Aliases: []string{"a"},
		},
	},
	OnUsageError: func(_ *cli.Context, err error, _ bool) error {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	},
	Action: func(c *cli.Context) error {
		words := c.Args().Slice()
		if len(words) == 0 {
			return fmt.Errorf("%w: no words given", ErrFlagParse)
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		d, err := openEdict(c, cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		missed := 0
		for _, word := range words {
			if c.Bool("all") {
				entries := d.Search(word)
				if len(entries) == 0 {
					fmt.Fprintf(c.App.ErrWriter, "%s: not found\n", word)
					missed++
					continue
				}
				for _, e := range entries {
					fmt.Fprintln(c.App.Writer, e)
				}
				continue
			}

			text, ok := d.Lookup(word, cfg.MaxLen)
			if !ok {
				fmt.Fprintf(c.App.ErrWriter, "%s: not found\n", word)
				missed++
				continue
			}
			fmt.Fprintln(c.App.Writer, text)
		}

		if missed > 0 {
			return fmt.Errorf("%w: %d of %d words", ErrNotFound, missed, len(words))
		}
		return nil
	},
}
