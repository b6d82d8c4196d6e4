package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hclkit-lang/hclkit/internal/cli/config"
	"github.com/hclkit-lang/hclkit/syntax/diag"
	"github.com/hclkit-lang/hclkit/syntax/parser"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [files...]",
		Short: "Check HCL files for parse errors",
		Long: `Parse HCL files and report any syntax errors.

Each failure is reported with its exact position, the offending source
line, and the alternatives the parser would have accepted there.

Examples:
  hclkit validate               # Validate all HCL files
  hclkit validate main.tf       # Validate a specific file`,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	files, err := findInputFiles(args, cfg)
	if err != nil {
		return fmt.Errorf("failed to find files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files found (extensions: %s)", strings.Join(cfg.Extensions, ", "))
	}

	successColor := color.New(color.FgGreen)
	errorColor := color.New(color.FgRed, color.Bold)

	invalid := 0
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", file, err)
			invalid++
			continue
		}

		body, err := parser.ParseBody(string(src))
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "✗ %s\n", file)
			fmt.Fprintln(cmd.ErrOrStderr(), renderParseError(err, cfg.NoColor))
			invalid++
			continue
		}

		logger.Debug("validated file",
			zap.String("file", file),
			zap.Int("structures", len(body.Structures)))
		successColor.Fprintf(cmd.OutOrStdout(), "✓ %s\n", file)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files invalid", invalid, len(files))
	}
	return nil
}

// renderParseError prefers the colored rendering for parse errors while
// leaving other errors as plain text.
func renderParseError(err error, noColor bool) string {
	if perr, ok := err.(*diag.Error); ok {
		return perr.FormatForTerminal(noColor)
	}
	return err.Error()
}
