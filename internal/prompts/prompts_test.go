// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme(t *testing.T) {
	theme := Theme()
	require.NotNil(t, theme)

	assert.Equal(t, 1, theme.Form.GetMarginTop())
	assert.Equal(t, 1, theme.Group.GetMarginTop())
	assert.Equal(t, 1, theme.FieldSeparator.GetMarginBottom())
	assert.Equal(t, lipgloss.Color("#f9ca24"), theme.Focused.Title.GetForeground())
	assert.Equal(t, lipgloss.Color("#bababa"), theme.Blurred.Title.GetForeground())
}
