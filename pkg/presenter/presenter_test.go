package presenter

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	presenter := New()
	assert.NotNil(t, presenter)
	assert.Equal(t, os.Stdout, presenter.output)
	assert.Equal(t, os.Stderr, presenter.errorOutput)
	assert.False(t, presenter.quiet)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name          string
		noColor       string
		conflintColor string
		expected      ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"CONFLINT_COLOR always", "", "always", ColorAlways},
		{"CONFLINT_COLOR force", "", "force", ColorAlways},
		{"CONFLINT_COLOR never", "", "never", ColorNever},
		{"CONFLINT_COLOR off", "", "off", ColorNever},
		{"default", "", "", ColorAuto},
		{"invalid value", "", "invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("CONFLINT_COLOR")

			if tt.noColor != "" {
				os.Setenv("NO_COLOR", tt.noColor)
			}
			if tt.conflintColor != "" {
				os.Setenv("CONFLINT_COLOR", tt.conflintColor)
			}

			assert.Equal(t, tt.expected, detectColorMode())

			os.Unsetenv("NO_COLOR")
			os.Unsetenv("CONFLINT_COLOR")
		})
	}
}

func TestError(t *testing.T) {
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)

	err := errors.New("test error")
	presenter.Error(err, "test context")

	output := errorOutput.String()
	assert.Contains(t, output, "[ERROR]")
	assert.Contains(t, output, "test context")
	assert.Contains(t, output, "test error")

	errorOutput.Reset()
	presenter.Error(err, "")
	output = errorOutput.String()
	assert.Contains(t, output, "test error")
	assert.NotContains(t, output, "test context")

	errorOutput.Reset()
	presenter.Error(nil, "context")
	assert.Empty(t, errorOutput.String())
}

func TestMessages(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Success("validation passed")
	assert.Contains(t, output.String(), "✓")
	assert.Contains(t, output.String(), "validation passed")

	output.Reset()
	presenter.Warning("name mismatch")
	assert.Contains(t, output.String(), "⚠")
	assert.Contains(t, output.String(), "name mismatch")

	output.Reset()
	presenter.Info("3 agents found")
	assert.Contains(t, output.String(), "3 agents found")
}

func TestSection(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Section("Test Section")

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Test Section", lines[0])
	assert.Equal(t, strings.Repeat("-", len("Test Section")), lines[1])
}

func TestQuietMode(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)
	presenter.SetQuiet(true)

	assert.True(t, presenter.IsQuiet())

	presenter.Success("suppressed")
	presenter.Warning("suppressed")
	presenter.Info("suppressed")
	presenter.Section("suppressed")
	presenter.Separator()
	assert.Empty(t, output.String())

	presenter.SetQuiet(false)
	assert.False(t, presenter.IsQuiet())
}

func TestGlobalFunctions(t *testing.T) {
	originalPresenter := defaultPresenter
	defer func() {
		defaultPresenter = originalPresenter
	}()

	var output, errorOutput bytes.Buffer
	defaultPresenter = NewWithOptions(&output, &errorOutput, ColorNever)

	Error(errors.New("test error"), "error context")
	assert.Contains(t, errorOutput.String(), "[ERROR]")

	output.Reset()
	Success("success message")
	assert.Contains(t, output.String(), "success message")

	output.Reset()
	Warning("warning message")
	assert.Contains(t, output.String(), "warning message")

	output.Reset()
	Info("info message")
	assert.Contains(t, output.String(), "info message")

	output.Reset()
	Section("Test Section")
	assert.Contains(t, output.String(), "Test Section")

	output.Reset()
	Separator()
	assert.Contains(t, output.String(), "----")

	SetQuiet(true)
	assert.True(t, IsQuiet())
	output.Reset()
	Info("should not appear")
	assert.Empty(t, output.String())
	SetQuiet(false)
}
