// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package trim contains the trimlog command: copy a log file without the
// block between the last open marker and the last close marker.
package trim

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/trimlog/internal/config"
	"github.com/matt-FFFFFF/trimlog/internal/ctxlog"
	"github.com/matt-FFFFFF/trimlog/internal/linerange"
	"github.com/matt-FFFFFF/trimlog/internal/report"
	"github.com/urfave/cli/v3"
)

const (
	configFlag      = "config"
	openMarkerFlag  = "open-marker"
	closeMarkerFlag = "close-marker"
	summaryFlag     = "summary"
	logFormatFlag   = "log-format"
	cliExitStr      = ""
	requiredArgs    = 2

	envPrefix = "TRIMLOG_"
)

// NewCommand returns the trimlog command. It is used as the root command of the binary.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "trimlog",
		Usage:     "remove the last restarted block from a simulation log",
		ArgsUsage: "INPUT OUTPUT",
		Description: `Copies INPUT to OUTPUT without the lines strictly after the last line starting
with the open marker, up to and including the last line starting with the close marker.

If no open marker is found, every line up to and including the last close marker is removed.
If no close marker is found, nothing is removed.

Markers default to "# 1:T " and "# -- restart MC: found lower energy". They can be changed
with a YAML or HCL config file, environment variables or flags, in increasing order of precedence.
Config file URLs use Hashicorp's go-getter syntax, see https://github.com/hashicorp/go-getter.`,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      configFlag,
				Aliases:   []string{"c"},
				Usage:     "YAML or HCL file (or go-getter URL) with open_marker and close_marker",
				TakesFile: true,
				Sources:   cli.EnvVars(envPrefix + "CONFIG"),
				OnlyOnce:  true,
			},
			&cli.StringFlag{
				Name:     openMarkerFlag,
				Usage:    "prefix of the line that opens the block",
				Sources:  cli.EnvVars(envPrefix + "OPEN_MARKER"),
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     closeMarkerFlag,
				Usage:    "prefix of the line that closes the block",
				Sources:  cli.EnvVars(envPrefix + "CLOSE_MARKER"),
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:        summaryFlag,
				Aliases:     []string{"s"},
				Usage:       "Print a summary of the removed range",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:     logFormatFlag,
				Usage:    "Log format, pretty or json",
				Value:    ctxlog.FormatPretty,
				Sources:  cli.EnvVars(envPrefix + "LOG_FORMAT"),
				OnlyOnce: true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < requiredArgs {
		_, err := fmt.Fprintf(cmd.Writer, "format: %s <input file name> <output file name>\n", cmd.Root().Name)
		return err //nolint:wrapcheck
	}

	logger, err := ctxlog.ForFormat(cmd.String(logFormatFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger = logger.With("command", cmd.Name)
	ctx = ctxlog.New(ctx, logger)

	if extra := cmd.Args().Slice()[requiredArgs:]; len(extra) > 0 {
		logger.Debug("ignoring extra arguments", "args", extra)
	}

	cfg, err := resolveConfig(ctx, cmd)
	if err != nil {
		ctxlog.Error(ctx, "failed to load configuration", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	in, out := cmd.Args().Get(0), cmd.Args().Get(1)

	rng, stats, err := linerange.TrimFile(ctx, in, out, cfg.Markers())
	if err != nil {
		ctxlog.Error(ctx, "failed to trim file", "input", in, "output", out, "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	if !cmd.Bool(summaryFlag) {
		return nil
	}

	s := report.Summary{
		Input:  in,
		Output: out,
		Range:  rng,
		Stats:  stats,
	}

	if err := s.Write(cmd.Writer, nil); err != nil {
		logger.Error(err.Error())
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// resolveConfig layers the config file and the marker flags over the defaults.
func resolveConfig(ctx context.Context, cmd *cli.Command) (config.Config, error) {
	cfg := config.Default()

	if url := cmd.String(configFlag); url != "" {
		var err error

		cfg, err = config.FromURL(ctx, url)
		if err != nil {
			return config.Config{}, err
		}
	}

	if cmd.IsSet(openMarkerFlag) {
		cfg.OpenMarker = cmd.String(openMarkerFlag)
	}

	if cmd.IsSet(closeMarkerFlag) {
		cfg.CloseMarker = cmd.String(closeMarkerFlag)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	ctxlog.Debug(ctx, "resolved markers", "open", cfg.OpenMarker, "close", cfg.CloseMarker)

	return cfg, nil
}
