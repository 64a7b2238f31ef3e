package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanaplatform/tanafmt/pkg/diagnostic"
)

func TestPrettyPreview_KeepsContent(t *testing.T) {
	block := diagnostic.FormatValidationError(
		"import { console } from 'tana/invalid';",
		"contract.ts",
		"Invalid Import",
		1,
		26,
		"Module 'tana/invalid' not found",
		"Available modules: tana/core, tana/kv",
		12,
	)

	preview := prettyPreview(block)

	assert.Contains(t, stripAnsi(preview), "❌ Invalid Import")
	assert.Contains(t, stripAnsi(preview), "contract.ts:1:26")
	assert.Contains(t, stripAnsi(preview), "^^^^^^^^^^^^")
	assert.Contains(t, stripAnsi(preview), "= help: Available modules: tana/core, tana/kv")
}

func TestPrettyPreview_SameLineCount(t *testing.T) {
	block := diagnostic.FormatValidationError("code", "f.ts", "Error", 1, 1, "m", "h", 1)

	preview := prettyPreview(block)

	assert.Equal(t, strings.Count(block, "\n"), strings.Count(preview, "\n"))
}

// stripAnsi removes ANSI escape codes for testing
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
