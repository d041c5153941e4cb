package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/xmlsmith/xmlsmith/pkg/document"
	"github.com/xmlsmith/xmlsmith/pkg/render"
)

var (
	fmtWrite       bool
	fmtCDATA       []string
	fmtEncoding    string
	fmtReplace     []string
	fmtReplaceFile string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [patterns...]",
	Short: "Reformat XML files: normalize whitespace, indent with 4 spaces",
	Long: `Parses each matching file, removes formatting whitespace from the tree and
prints it back as indented XML with an explicit declaration line.

Patterns support ** for recursive directory matching:

    xmlsmith fmt 'configs/**/*.xml' --write

Replacements (--replace, --replacements) are literal substring substitutions
applied to the file content before parsing, in the order given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite files in place instead of printing to stdout")
	fmtCmd.Flags().StringSliceVar(&fmtCDATA, "cdata", nil, "Tag names whose text is emitted inside CDATA sections (repeatable)")
	fmtCmd.Flags().StringVar(&fmtEncoding, "encoding", document.DefaultEncoding, "IANA charset of the input files; also written to the output declaration")
	fmtCmd.Flags().StringArrayVar(&fmtReplace, "replace", nil, "Literal substitution as search=replace, applied before parsing (repeatable, ordered)")
	fmtCmd.Flags().StringVar(&fmtReplaceFile, "replacements", "", "YAML file of ordered search: replace pairs applied before parsing")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	log := newLogger()

	repl, err := buildReplacements(fmtReplaceFile, fmtReplace)
	if err != nil {
		return err
	}

	files, err := expandPatterns(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %v", args)
	}

	loader := document.NewLoader()
	loader.SetLogger(log)
	parseOpts := &document.ParseOptions{Replacements: repl, Encoding: fmtEncoding}
	renderOpts := &render.Options{CDATAElements: fmtCDATA, Encoding: fmtEncoding}

	for _, path := range files {
		doc, err := loader.ParseFile(path, parseOpts)
		if err != nil {
			return err
		}
		text, err := render.Document(doc, renderOpts)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}
		if fmtWrite {
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			log.Info("rewrote file", "path", path)
		} else {
			fmt.Fprint(cmd.OutOrStdout(), text)
		}
	}
	return nil
}

// expandPatterns expands glob patterns to a sorted, de-duplicated file list.
// A pattern without glob metacharacters passes through as a literal path so
// missing files fail at open time with a useful message.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := expandGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 && !strings.ContainsAny(pattern, "*?[{") {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if _, dup := seen[m]; !dup {
				seen[m] = struct{}{}
				files = append(files, m)
			}
		}
	}
	// Sort for deterministic ordering
	sort.Strings(files)
	return files, nil
}

// expandGlob expands a glob pattern to a list of matching file paths.
// Uses doublestar for ** support, falls back to filepath.Glob for simple patterns.
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		// FilepathGlob returns matches using the OS path separator
		return doublestar.FilepathGlob(pattern)
	}
	return filepath.Glob(pattern)
}
