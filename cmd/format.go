/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanaplatform/tanafmt/pkg/diagnostic"
	"github.com/tanaplatform/tanafmt/pkg/render"
)

func NewFormatCmd() *cobra.Command {
	var (
		filePath        string
		errorKind       string
		lineNum         int
		colNum          int
		message         string
		helpText        string
		underlineLength int
	)

	cmd := &cobra.Command{
		Use:   "format [source-file]",
		Short: "Render one validation error against its source code",
		Long: `Renders a single validation error as the shared Tana diagnostic block.

The source code is read from the file argument or piped via stdin. The
diagnostic fields themselves are passed as flags; upstream tools (parsers,
type checkers, linters) normally produce them.

Line and column are 1-indexed raw character positions. Out-of-range values
never fail: a line beyond the source renders an empty excerpt, and a zero
underline length is promoted to a single caret.

Output formats:
  text    the canonical block, byte-identical across all Tana tools
  pretty  the same block with terminal colors (preview only)
  json    the structured diagnostic plus the rendered text`,
		Example: `  # Render an invalid-import diagnostic
  tanafmt format contract.ts --kind "Invalid Import" --line 1 --col 26 \
    --message "Module 'tana/invalid' not found" \
    --help-text "Available modules: tana/core, tana/kv" --underline 12

  # Read the source from stdin, naming the file for the header
  cat contract.ts | tanafmt format --file contract.ts --kind "Type Error" \
    --line 3 --col 7 --message "expected u64"`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, sourceName, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			if filePath == "" {
				filePath = sourceName
			}

			report := diagnostic.Report{
				Kind:            errorKind,
				File:            filePath,
				Line:            lineNum,
				Column:          colNum,
				Message:         message,
				Help:            helpText,
				UnderlineLength: underlineLength,
			}

			r := render.Renderer[formatResult]{
				Data: formatResult{
					Diagnostic: report,
					Rendered:   report.Render(code),
				},
				TextFormat:   func(res formatResult) string { return res.Rendered },
				PrettyFormat: func(res formatResult) string { return prettyPreview(res.Rendered) },
			}

			output, err := r.Render(outputFormat)
			if err != nil {
				return err
			}

			if outputFormat == render.FormatJSON {
				fmt.Fprintln(cmd.OutOrStdout(), output)
			} else {
				fmt.Fprint(cmd.OutOrStdout(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "File path shown in the location header (default: the source file argument, or \"stdin\")")
	cmd.Flags().StringVar(&errorKind, "kind", "Validation Error", "Category of the error, e.g. \"Invalid Import\" or \"Type Error\"")
	cmd.Flags().IntVar(&lineNum, "line", 1, "Line number of the error (1-indexed)")
	cmd.Flags().IntVar(&colNum, "col", 1, "Column number of the error (1-indexed)")
	cmd.Flags().StringVar(&message, "message", "", "Error message placed after the underline")
	cmd.Flags().StringVar(&helpText, "help-text", "", "Help text explaining how to fix the error")
	cmd.Flags().IntVar(&underlineLength, "underline", 1, "Number of characters to underline")

	return cmd
}

// readSource returns the source code and a display name for it, reading from
// the file argument when present and from stdin otherwise.
func readSource(cmd *cobra.Command, args []string) (code string, sourceName string, err error) {
	if len(args) == 1 {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read source file: %w", err)
		}
		return string(bytes), args[0], nil
	}

	bytes, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(bytes), "stdin", nil
}
