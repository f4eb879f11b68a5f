// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

// RunSourceFileSelect prompts for the Go source files to translate.
func RunSourceFileSelect(files []string) ([]string, error) {
	if len(files) == 0 {
		return nil, errors.New("no Go source files found in the current directory")
	}

	options := make([]huh.Option[string], len(files))
	for i, f := range files {
		options[i] = huh.NewOption(f, f)
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Source files").
				Description("Select the event definition files to translate").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, errors.New("no source files selected")
	}
	return selected, nil
}

// RunFormatSelect prompts for the translation output format.
func RunFormatSelect(value *string, formats []string) error {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(options...).
				Value(value),
		),
	).WithTheme(Theme())

	return form.Run()
}
