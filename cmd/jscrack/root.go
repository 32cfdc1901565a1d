// Copyright 2025 walteh LLC
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
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/jscrack/pkg/config"
	"github.com/walteh/jscrack/pkg/engine"
	"github.com/walteh/jscrack/pkg/log"
	"github.com/walteh/jscrack/pkg/operation"
	"github.com/walteh/jscrack/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Handler holds the parsed command line for one invocation
type Handler struct {
	input      string
	output     string
	configFile string
	engine     string
	exclude    []string
	force      bool
	debug      bool

	mangle        bool
	noJSX         bool
	noUnpack      bool
	noDeobfuscate bool
	noUnminify    bool

	// changed records which option flags were given explicitly
	changed map[string]bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var optionFlags = []string{"mangle", "no-jsx", "no-unpack", "no-deobfuscate", "no-unminify"}

// NewCommand builds the jscrack root command
func NewCommand() *cobra.Command {
	h := &Handler{}
	info := readBuildInfo()

	cmd := &cobra.Command{
		Use:   "jscrack [file]",
		Short: "Deobfuscate, unminify and unpack JavaScript files",
		Long: `jscrack runs a JavaScript transformation engine over a file, a directory
of .js files or stdin, and writes the results to a file, an output
directory mirroring the input tree, or stdout.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), cmd.ErrOrStderr(), h.debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				h.input = args[0]
			}
			h.changed = make(map[string]bool, len(optionFlags))
			for _, name := range optionFlags {
				h.changed[name] = cmd.Flags().Changed(name)
			}
			h.stdin = cmd.InOrStdin()
			h.stdout = cmd.OutOrStdout()
			h.stderr = cmd.ErrOrStderr()
			return h.Run(cmd.Context())
		},
	}
	cmd.SetVersionTemplate(versionTemplate(info))

	flags := cmd.Flags()
	flags.StringVarP(&h.output, "output", "o", "", "output file, or output directory when the input is a directory")
	flags.BoolVarP(&h.force, "force", "f", false, "overwrite an existing output")
	flags.BoolVarP(&h.mangle, "mangle", "m", false, "mangle variable names")
	flags.BoolVar(&h.noJSX, "no-jsx", false, "do not decompile react components to JSX")
	flags.BoolVar(&h.noUnpack, "no-unpack", false, "do not extract modules from the bundle")
	flags.BoolVar(&h.noDeobfuscate, "no-deobfuscate", false, "do not deobfuscate the code")
	flags.BoolVar(&h.noUnminify, "no-unminify", false, "do not unminify the code")
	flags.StringVarP(&h.configFile, "config", "c", "", "config file path (default: .jscrack.{yaml,yml,hcl,json} in the working directory)")
	flags.StringArrayVarP(&h.exclude, "exclude", "e", nil, "glob of files to skip in directory mode (repeatable)")
	flags.StringVar(&h.engine, "engine", "", "engine command line (default: webcrack)")
	cmd.PersistentFlags().BoolVarP(&h.debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// Run loads the configuration, merges the flags over it and executes one run
func (h *Handler) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	cfg, err := h.loadConfig(ctx)
	if err != nil {
		return err
	}
	logger.Debug().Str("location", cfg.Location()).Stringer("config", cfg).Msg("configuration resolved")

	runner, err := operation.NewRunner(operation.Options{
		Engine: h.newEngine(cfg),
		Stdin:  h.stdin,
		Stdout: h.stdout,
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	mirror := zerolog.Nop()
	if h.debug {
		mirror = *logger
	}
	ctx = log.NewContext(ctx, log.New(h.stderr, mirror))

	report, err := runner.Run(ctx, operation.Request{
		Input:   h.input,
		Output:  h.output,
		Force:   h.force || cfg.Force,
		Options: h.engineOptions(cfg),
		Exclude: append(slices.Clone(cfg.Exclude), h.exclude...),
	})

	// an interrupted directory run still reports what it got through
	if report != nil {
		status.NewUserLogger(ctx, h.stderr).LogSummary(report.Summary())
	}
	return err
}

// loadConfig reads --config, a discovered default file or nothing
func (h *Handler) loadConfig(ctx context.Context) (*config.Config, error) {
	path := h.configFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Errorf("getting working directory: %w", err)
		}
		path = config.Discover(wd)
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(ctx, path)
	if err != nil {
		return nil, errors.Errorf("%w: loading %s: %w", operation.ErrConfiguration, path, err)
	}
	return cfg, nil
}

// newEngine prefers --engine over the configured engine
func (h *Handler) newEngine(cfg *config.Config) engine.Engine {
	fields := strings.Fields(h.engine)
	if len(fields) == 0 {
		return cfg.NewEngine()
	}
	return engine.NewCommand(fields[0], fields[1:]...)
}

// engineOptions applies explicitly given flags over the configured options
func (h *Handler) engineOptions(cfg *config.Config) engine.Options {
	opts := cfg.EngineOptions()
	if h.changed["mangle"] {
		opts.Mangle = h.mangle
	}
	if h.changed["no-jsx"] {
		opts.JSX = !h.noJSX
	}
	if h.changed["no-unpack"] {
		opts.Unpack = !h.noUnpack
	}
	if h.changed["no-deobfuscate"] {
		opts.Deobfuscate = !h.noDeobfuscate
	}
	if h.changed["no-unminify"] {
		opts.Unminify = !h.noUnminify
	}
	return opts
}

// setupLogging installs a stderr console logger, quiet unless debug is set
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
