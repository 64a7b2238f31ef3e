/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanaplatform/tanafmt/pkg/render"
	"golang.org/x/term"
)

var outputFormat render.Format

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tanafmt",
		Short: "Render Tana validation errors as compiler-style diagnostic blocks",
		Long: `tanafmt renders structured validation errors the way the Tana toolchain does:
a location header, a source excerpt with a line-number gutter, a caret
underline beneath the offending span, and a help footer.

The same formatting function backs tana-runtime, tana-edge, the playground
(via the WebAssembly build under wasm/), and this CLI, so the text output is
byte-identical everywhere for identical inputs.

Output can be formatted as the canonical text block (default when piping),
a colorized preview (default in terminals), or JSON for integration with
other tools. Only the text format is the shared compatibility contract.`,
		Example: `  # Render a diagnostic against a contract file
  tanafmt format contract.ts --kind "Invalid Import" --line 1 --col 26 \
    --message "Module 'tana/invalid' not found" \
    --help-text "Available modules: tana/core, tana/kv" --underline 12

  # Render against source piped via stdin
  cat contract.ts | tanafmt format --kind "Type Error" --line 3 --col 7 \
    --message "expected u64" --file contract.ts

  # Emit the structured diagnostic plus rendered text as JSON
  tanafmt format contract.ts --kind "Type Error" --line 3 --col 7 \
    --message "expected u64" -f json`,
	}

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, text, pretty (default: pretty if interactive, text otherwise)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		return err
	}

	cmd.AddCommand(NewFormatCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	return ExecuteWithArgsAndStdin(args, nil)
}

// ExecuteWithArgsAndStdin runs the CLI with the given arguments and stdin, returns stdout, stderr, and any error.
// This is useful for testing commands that read from stdin.
func ExecuteWithArgsAndStdin(args []string, stdin *bytes.Buffer) (stdout string, stderr string, err error) {
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}
