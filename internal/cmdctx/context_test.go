// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cmdctx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arahalevich-move/aws-lambda-events/internal/config"
)

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

func TestLoad_WithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	ctx, err := Load(context.Background(), false)
	require.NoError(t, err)

	run := From(ctx)
	require.NotNil(t, run)
	assert.NotNil(t, run.Log)
	assert.Nil(t, run.Config)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Inputs = []string{"events.go"}
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))
	chdir(t, dir)

	ctx, err := Load(context.Background(), true)
	require.NoError(t, err)

	run := From(ctx)
	require.NotNil(t, run.Config)
	assert.Equal(t, []string{"events.go"}, run.Config.Inputs)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 99\nformat: rust\n"), 0o600))
	chdir(t, dir)

	_, err := Load(context.Background(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestFrom_MissingContext(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
