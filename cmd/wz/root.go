// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"widgetzero.org/wz/base/errors"
	"widgetzero.org/wz/base/logx"
	"widgetzero.org/wz/config"
	"widgetzero.org/wz/core"
	"widgetzero.org/wz/scene"
)

// options are the flags shared by all commands.
type options struct {
	configFile  string
	verbose     bool
	veryVerbose bool
	quiet       bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "wz",
		Short:         "Inspect the layout and rendering of WidgetZero scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.configFile, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&o.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only log errors")

	cmd.AddCommand(newLayoutCmd(o), newDrawCmd(o), newDockCmd(o))
	return cmd
}

// setup sets the log level and loads the config. The level in the
// config file applies unless a verbosity flag is given.
func (o *options) setup(cmd *cobra.Command) error {
	var err error
	if o.configFile != "" {
		o.cfg, err = config.Open(o.configFile)
	} else {
		o.cfg, err = config.OpenDefault()
	}
	if err != nil {
		return err
	}
	logx.UserLevel = logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet)
	if !o.veryVerbose && !o.verbose && !o.quiet && o.cfg.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(o.cfg.LogLevel)); err != nil {
			errors.Log(errors.Errorf("invalid log level %q in config: %w", o.cfg.LogLevel, err))
		} else {
			logx.UserLevel = lvl
		}
	}
	slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr())))
	return nil
}

// open builds the scene in the given file, drawing to a new
// [core.RecordRenderer].
func (o *options) open(filename string) (*core.MainWindow, *core.RecordRenderer, error) {
	s, err := scene.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	rr := core.NewRecordRenderer()
	mw, err := s.Build(rr, o.cfg)
	if err != nil {
		return nil, nil, errors.Errorf("%s: %w", filename, err)
	}
	slog.Info("opened scene", "file", filename, "size", mw.Size())
	return mw, rr, nil
}

// output returns the termenv output of the given command.
func output(cmd *cobra.Command) *termenv.Output {
	return termenv.NewOutput(cmd.OutOrStdout())
}
