// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cmdctx

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// FromCommand extracts the run Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the run Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	run := FromCommand(cmd)
	if run == nil {
		return nil, errors.New("run context not loaded")
	}
	return run, nil
}

// PreRunLoad is a PersistentPreRunE that loads the run context and
// stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose = false
	}

	ctx, err := Load(cmd.Context(), verbose)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
