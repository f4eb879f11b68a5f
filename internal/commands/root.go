// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/arahalevich-move/aws-lambda-events/internal/cmdctx"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "eventgen",
		Short:             "Generate Rust event definitions from Go event sources",
		PersistentPreRunE: cmdctx.PreRunLoad,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	registerGenerateCmd(rootCmd, translators)
	registerVersionCmd(rootCmd)

	return rootCmd
}
