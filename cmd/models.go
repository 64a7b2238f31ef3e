package cmd

import "github.com/tanaplatform/tanafmt/pkg/diagnostic"

// formatResult is the JSON output shape of the format command: the structured
// diagnostic alongside the canonical rendered block.
type formatResult struct {
	Diagnostic diagnostic.Report `json:"diagnostic"`
	Rendered   string            `json:"rendered"`
}
