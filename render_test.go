package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-Moura/portfolio/internal/content"
	"github.com/Dev-Moura/portfolio/internal/theme"
)

func TestRenderPage_HTML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, renderPage(&buf, content.Default(), theme.Orange, true, "html", 80))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `<div id="app" class="dark"`)
	assert.Contains(t, out, "text-orange-600")
	assert.NotContains(t, out, "text-blue-600")
}

func TestRenderPage_Text(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, renderPage(&buf, content.Default(), theme.Blue, false, "text", 80))

	assert.Contains(t, buf.String(), "Michael Moura")
	assert.Contains(t, buf.String(), "1[")
}

func TestRenderPage_UnknownFormat(t *testing.T) {
	err := renderPage(&bytes.Buffer{}, content.Default(), theme.Blue, false, "pdf", 80)
	assert.ErrorContains(t, err, "unknown format")
}
