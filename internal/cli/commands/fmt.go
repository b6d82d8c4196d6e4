package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hclkit-lang/hclkit/internal/cli/config"
	"github.com/hclkit-lang/hclkit/syntax/format"
	"github.com/hclkit-lang/hclkit/syntax/parser"
)

var (
	fmtWrite bool
	fmtCheck bool
)

// NewFmtCommand creates the fmt command
func NewFmtCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Rewrite HCL files in canonical style",
		Long: `Rewrite HCL files in the canonical style.

By default, prints the formatted output of each file to stdout without
modifying anything. Use --write to rewrite files in place, or --check
to verify formatting.

Examples:
  hclkit fmt                    # Print canonical form of all HCL files
  hclkit fmt --write            # Format and save all files
  hclkit fmt --check            # Exit with error if not canonical
  hclkit fmt main.tf            # Format a specific file`,
		RunE: runFmt,
	}

	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write formatted output to files")
	cmd.Flags().BoolVarP(&fmtCheck, "check", "c", false, "Check if files are formatted (exit 1 if not)")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
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

	needsFormat := false
	errorCount := 0

	successColor := color.New(color.FgGreen)
	errorColor := color.New(color.FgRed, color.Bold)

	for _, file := range files {
		original, err := os.ReadFile(file)
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", file, err)
			errorCount++
			continue
		}

		body, err := parser.ParseBody(string(original))
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error parsing %s:\n", file)
			fmt.Fprintln(cmd.ErrOrStderr(), renderParseError(err, cfg.NoColor))
			errorCount++
			continue
		}
		formatted := format.ToString(body)
		logger.Debug("formatted file", zap.String("file", file), zap.Int("bytes", len(formatted)))

		if formatted == string(original) {
			if !fmtCheck && !fmtWrite {
				fmt.Fprint(cmd.OutOrStdout(), formatted)
			}
			continue
		}

		needsFormat = true
		switch {
		case fmtCheck:
			errorColor.Fprintf(cmd.ErrOrStderr(), "✗ %s needs formatting\n", file)
		case fmtWrite:
			if err := os.WriteFile(file, []byte(formatted), 0644); err != nil {
				errorColor.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", file, err)
				errorCount++
				continue
			}
			successColor.Fprintf(cmd.OutOrStdout(), "✓ %s formatted\n", file)
		default:
			fmt.Fprint(cmd.OutOrStdout(), formatted)
		}
	}

	if fmtCheck && needsFormat {
		return fmt.Errorf("files need formatting")
	}
	if errorCount > 0 {
		return fmt.Errorf("%d files had errors", errorCount)
	}
	return nil
}

// findInputFiles finds all configured HCL files under the given paths
func findInputFiles(patterns []string, cfg *config.Config) ([]string, error) {
	var files []string

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	hasExt := func(path string) bool {
		for _, ext := range cfg.Extensions {
			if strings.HasSuffix(path, ext) {
				return true
			}
		}
		return false
	}
	excluded := func(name string) bool {
		for _, dir := range cfg.Exclude {
			if name == dir {
				return true
			}
		}
		return false
	}

	for _, pattern := range patterns {
		info, err := os.Stat(pattern)
		if err == nil && info.IsDir() {
			err := filepath.Walk(pattern, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() && excluded(info.Name()) {
					return filepath.SkipDir
				}
				if !info.IsDir() && hasExt(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if hasExt(match) {
				files = append(files, match)
			}
		}
	}

	// Remove duplicates
	seen := make(map[string]bool)
	unique := []string{}
	for _, file := range files {
		if !seen[file] {
			seen[file] = true
			unique = append(unique, file)
		}
	}
	return unique, nil
}
