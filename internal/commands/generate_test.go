// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arahalevich-move/aws-lambda-events/internal/config"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate/rust"
)

const pingSource = "package events\n\ntype PingEvent struct {\n\tMessage string `json:\"message\"`\n}\n"

// chdir changes the working directory for the duration of the test.
// It mirrors testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func newTestRootCmd() *cobra.Command {
	translators := translate.Register{
		"rust": rust.NewTranslator(zap.NewNop().Sugar()),
	}
	return NewRootCmd(translators)
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ping.go"), []byte(pingSource), 0o600))
	chdir(t, dir)

	rootCmd := newTestRootCmd()
	rootCmd.SetArgs([]string{"generate", "ping.go", "--output", "out"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "out", "ping.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "pub struct PingEvent {")
	assert.Contains(t, string(data), "pub message: Option<String>,")
}

func TestGenerateCommand_RefusesOverwriteByDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ping.go"), []byte(pingSource), 0o600))
	chdir(t, dir)

	rootCmd := newTestRootCmd()
	rootCmd.SetArgs([]string{"generate", "ping.go", "--output", "out"})
	require.NoError(t, rootCmd.Execute())

	rootCmd = newTestRootCmd()
	rootCmd.SetArgs([]string{"generate", "ping.go", "--output", "out"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	rootCmd = newTestRootCmd()
	rootCmd.SetArgs([]string{"generate", "ping.go", "--output", "out", "--overwrite"})
	require.NoError(t, rootCmd.Execute())
}

func TestGenerateCommand_InputsFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ping.go"), []byte(pingSource), 0o600))

	cfg := config.Default()
	cfg.Inputs = []string{"ping.go"}
	cfg.Output = "rs"
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))
	chdir(t, dir)

	rootCmd := newTestRootCmd()
	rootCmd.SetArgs([]string{"generate"})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "rs", "ping.rs"))
	assert.NoError(t, err)
}

func TestGenerateOne_StopsWhenContextCanceled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ping.go"), []byte(pingSource), 0o600))
	chdir(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	translator := rust.NewTranslator(zap.NewNop().Sugar())
	_, err := generateOne(ctx, zap.NewNop().Sugar(), translator, "ping.go", &generateOptions{output: "out"})
	require.ErrorIs(t, err, context.Canceled)

	// The canceled run never reached the output directory.
	_, statErr := os.Stat(filepath.Join(dir, "out", "ping.rs"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateCommand_TranslationFailureAborts(t *testing.T) {
	dir := t.TempDir()
	bad := "package events\n\nvar Mutable = 42\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.go"), []byte(bad), 0o600))
	chdir(t, dir)

	rootCmd := newTestRootCmd()
	rootCmd.SetArgs([]string{"generate", "bad.go", "--output", "out"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected top-level declaration")

	// Nothing was written.
	_, statErr := os.Stat(filepath.Join(dir, "out", "bad.rs"))
	assert.True(t, os.IsNotExist(statErr))
}
