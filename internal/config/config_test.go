// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := &Config{
		Version:   CurrentConfigVersion,
		Inputs:    []string{"events/s3.go", "events/sns.go"},
		Output:    "src/generated",
		Format:    "rust",
		Overwrite: true,
	}

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("version: [oops\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Version = 99
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Format = ""
	assert.Error(t, cfg.Validate())
}
