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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var infoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print information about the dictionary",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		d, err := openEdict(c, cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
		tbl.AddRow("Path", cfg.Dict)
		tbl.AddRow("Version", d.Version())
		tbl.AddRow("Entries", d.EntryCount())
		tbl.AddRow("Keys", d.KeyCount())
		tbl.AddRow("Skipped", len(d.Skipped()))
		tbl.Print()

		if len(d.Skipped()) > 0 {
			skipped := table.New("Line", "Error").WithWriter(c.App.ErrWriter)
			for _, fErr := range d.Skipped() {
				skipped.AddRow(fErr.Line, fErr)
			}
			skipped.Print()
		}

		return nil
	},
}
