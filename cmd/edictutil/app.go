// Copyright 2025 Ian Lewis
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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-edict"
	"github.com/ianlewis/go-edict/internal/folding"
	"github.com/ianlewis/go-edict/segment"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeNotFound is the exit code when a queried word is not found.
	ExitCodeNotFound
)

// ErrEdictutil is a parent error for all command errors.
var ErrEdictutil = errors.New("edictutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrEdictutil)

// ErrNoDict indicates that no dictionary file was given or found.
var ErrNoDict = fmt.Errorf("%w: no dictionary found", ErrEdictutil)

// ErrNotFound indicates that a queried word is not in the dictionary.
var ErrNotFound = fmt.Errorf("%w: not found", ErrEdictutil)

var copyrightNames = []string{
	"2021 Google LLC",
	"2024 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name
	// argument. The app defines its own --help flag instead.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// exitCode returns the process exit code for err.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeUnknownError
	}
}

func newEdictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Look up words in EDICT2 dictionaries.",
		Description: strings.Join([]string{
			"EDICT2 utility written in Go.",
			"http://github.com/ianlewis/go-edict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "load the dictionary from `PATH`",
				Aliases: []string{"d"},
				EnvVars: []string{"EDICT_DICT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read default settings from the YAML `FILE`",
				EnvVars: []string{"EDICT_CONFIG"},
			},
			&cli.StringSliceFlag{
				Name:  "fold",
				Usage: "fold keys and queries with `FOLDER` (kana, width, space)",
			},
			&cli.IntFlag{
				Name:  "max-len",
				Usage: "truncate entries to `N` bytes",
				Value: segment.DefaultMaxLen,
			},
			&cli.BoolFlag{
				Name:  "mmap",
				Usage: "memory map the dictionary file",
			},
			&cli.BoolFlag{
				Name:  "skip-malformed",
				Usage: "skip malformed dictionary lines",
			},
			&cli.BoolFlag{
				Name:  "strip-annotations",
				Usage: "remove tags such as (P) from dictionary keys",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log at `LEVEL` (debug, info, warn, error)",
				Value: "warn",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			//nolint:wrapcheck // error does not need to be wrapped.
			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			queryCommand,
			annotateCommand,
			infoCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\nCopyright (c) %s\n\n%s",
		c.App.Name,
		versionInfo.GitVersion,
		strings.Join(copyrightNames, "\nCopyright (c) "),
		versionInfo.String(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEdictutil, err)
	}
	return nil
}

// newLogger returns a logger writing to the app's error writer.
func newLogger(c *cli.Context, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: log level: %w", ErrFlagParse, err)
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: lvl,
	})), nil
}

// openEdict loads the dictionary configured by cfg.
func openEdict(c *cli.Context, cfg *config) (*edict.Edict, error) {
	if cfg.Dict == "" {
		return nil, ErrNoDict
	}

	folder, err := folding.Chain(cfg.Fold)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	logger, err := newLogger(c, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	//nolint:wrapcheck // errors from edict are descriptive.
	return edict.Open(cfg.Dict, &edict.Options{
		SkipMalformed:    cfg.SkipMalformed,
		StripAnnotations: cfg.StripAnnotations,
		Folder:           folder,
		MMap:             cfg.MMap,
		Logger:           logger,
	})
}

// findDict returns the first dictionary file that exists in locations.
func findDict(locations []string) string {
	for _, dir := range locations {
		for _, name := range dictNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// dictNames are the file names searched for in dictionary locations.
var dictNames = []string{
	"edict2",
	"edict2.gz",
	"edict2.dz",
	"edict2u",
}
