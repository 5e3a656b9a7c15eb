package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyk/xdgdir/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{
			name:     "auto format",
			format:   ui.FormatAuto,
			expected: "auto",
		},
		{
			name:     "terminal format",
			format:   ui.FormatTerminal,
			expected: "term",
		},
		{
			name:     "text format",
			format:   ui.FormatText,
			expected: "text",
		},
		{
			name:     "env format",
			format:   ui.FormatEnv,
			expected: "env",
		},
		{
			name:     "json format",
			format:   ui.FormatJSON,
			expected: "json",
		},
		{
			name:     "yaml format",
			format:   ui.FormatYAML,
			expected: "yaml",
		},
		{
			name:     "toml format",
			format:   ui.FormatTOML,
			expected: "toml",
		},
		{
			name:     "unknown format",
			format:   ui.Format(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{
			name:     "parse auto",
			input:    "auto",
			expected: ui.FormatAuto,
		},
		{
			name:     "parse empty string as auto",
			input:    "",
			expected: ui.FormatAuto,
		},
		{
			name:     "parse term",
			input:    "term",
			expected: ui.FormatTerminal,
		},
		{
			name:     "parse terminal",
			input:    "terminal",
			expected: ui.FormatTerminal,
		},
		{
			name:     "parse text",
			input:    "text",
			expected: ui.FormatText,
		},
		{
			name:     "parse plain",
			input:    "plain",
			expected: ui.FormatText,
		},
		{
			name:     "parse env",
			input:    "env",
			expected: ui.FormatEnv,
		},
		{
			name:     "parse shell as env",
			input:    "shell",
			expected: ui.FormatEnv,
		},
		{
			name:     "parse json",
			input:    "json",
			expected: ui.FormatJSON,
		},
		{
			name:     "parse yaml",
			input:    "yaml",
			expected: ui.FormatYAML,
		},
		{
			name:     "parse toml",
			input:    "toml",
			expected: ui.FormatTOML,
		},
		{
			name:     "parse invalid format",
			input:    "invalid",
			expected: ui.FormatAuto,
			wantErr:  true,
		},
		{
			name:     "parse uppercase term",
			input:    "TERM",
			expected: ui.FormatTerminal,
		},
		{
			name:     "parse mixed case JSON",
			input:    "Json",
			expected: ui.FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, format)
			}
		})
	}
}
