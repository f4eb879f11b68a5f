// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/arahalevich-move/aws-lambda-events/internal/commands"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate/rust"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	translators := translate.Register{
		"rust": rust.NewTranslator(nil),
	}

	rootCmd := commands.NewRootCmd(translators)
	return rootCmd.ExecuteContext(ctx)
}
