// Package diagnostic renders Tana validation errors as fixed, human-readable
// text blocks with a source excerpt, a caret underline, and a help footer.
//
// The rendered block is a compatibility contract: tana-runtime, tana-edge, the
// playground, and the CLI all call the same function and must produce
// byte-identical output for identical inputs. Nothing here applies color or
// ANSI styling; only the literal marker and box-drawing glyphs are used.
package diagnostic

import (
	"fmt"
	"strings"
)

// FormatValidationError renders a single validation error in Rust/Gleam-style
// layout:
//
//	Validation Error
//	❌ Invalid Import
//
//	┌─ contract.ts:1:26
//	│
//	  1 │ import { console } from 'tana/invalid';
//	    │                          ^^^^^^^^^^^^ Module 'tana/invalid' not found
//	│
//	= help: Available modules: tana/core, tana/kv, tana/block
//	│
//
// lineNum and colNum are 1-indexed. The function is total: out-of-range line
// numbers render an empty excerpt, a zero underline length is promoted to a
// single caret, and columns at or below 1 produce no padding. Column positions
// are raw character offsets, not grapheme-aware.
func FormatValidationError(code, filePath, errorKind string, lineNum, colNum int, message, help string, underlineLength int) string {
	lines := splitLines(code)

	excerpt := ""
	if lineNum > 0 && lineNum <= len(lines) {
		excerpt = lines[lineNum-1]
	}

	if underlineLength < 1 {
		underlineLength = 1
	}

	padding := colNum - 1
	if padding < 0 {
		padding = 0
	}

	return fmt.Sprintf("\nValidation Error\n❌ %s\n\n┌─ %s:%d:%d\n│\n%3d │ %s\n    │ %s%s %s\n│\n= help: %s\n│\n",
		errorKind,
		filePath,
		lineNum,
		colNum,
		lineNum,
		excerpt,
		strings.Repeat(" ", padding),
		strings.Repeat("^", underlineLength),
		message,
		help,
	)
}

// splitLines splits source code into lines without their terminators.
// A trailing newline does not produce a spurious empty final line, and a
// carriage return is stripped only when it precedes a newline.
func splitLines(code string) []string {
	var lines []string
	for len(code) > 0 {
		i := strings.IndexByte(code, '\n')
		if i < 0 {
			lines = append(lines, code)
			break
		}
		lines = append(lines, strings.TrimSuffix(code[:i], "\r"))
		code = code[i+1:]
	}
	return lines
}
