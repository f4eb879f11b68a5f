// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides the source declaration model, the
// top-level declaration dispatcher, and the translator registry.
package translate

import (
	"sort"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Translator defines the interface all target-dialect translators
// must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "rust").
	Name() string

	// Translate converts the accepted declarations of one source file
	// to the target dialect. Translation is all-or-nothing: the first
	// unsupported construct aborts with no partial output.
	Translate(src *Source) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".rs").
	FileExtension() string
}

// LoggerAware is implemented by translators that accept the run logger.
type LoggerAware interface {
	WithLogger(log *zap.SugaredLogger) Translator
}

// Register maps translator names to implementations.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, errors.Newf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
