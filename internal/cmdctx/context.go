// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package cmdctx provides run context loading for CLI commands: the
// shared logger and, when present, the project configuration.
package cmdctx

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/arahalevich-move/aws-lambda-events/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the per-run dependencies shared by CLI commands.
type Context struct {
	// Log is the run's logger, never nil.
	Log *zap.SugaredLogger

	// Config is the loaded eventgen.yaml, or nil when the working
	// directory has none. Running without a config file is fine;
	// commands then rely on flags alone.
	Config *config.Config
}

// Load builds the run context: it configures the logger and loads
// eventgen.yaml from the working directory if one exists. It returns a
// new context.Context with the run Context stored in it.
func Load(ctx context.Context, verbose bool) (context.Context, error) {
	log, err := newLogger(verbose)
	if err != nil {
		return nil, err
	}

	run := &Context{Log: log}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting current directory")
	}

	configPath := filepath.Join(cwd, config.FileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
		}
		run.Config = cfg
		log.Debugw("loaded config", "path", configPath)
	}

	return context.WithValue(ctx, contextKey{}, run), nil
}

// newLogger builds the CLI logger. Verbose runs get a development
// config at debug level; normal runs log warnings and above so
// generated output stays the only thing on a clean run's terminal.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return log.Sugar(), nil
}

// From extracts the run Context from a context.Context. Returns nil if
// none is stored.
func From(ctx context.Context) *Context {
	run, _ := ctx.Value(contextKey{}).(*Context)
	return run
}
