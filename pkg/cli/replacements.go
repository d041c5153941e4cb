package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/xmlsmith/xmlsmith/pkg/document"
)

// buildReplacements combines a YAML replacements file with --replace flag
// pairs. File entries run first, then flag pairs in the order given, so the
// command line can override or extend the file.
func buildReplacements(file string, pairs []string) (document.Replacements, error) {
	var repl document.Replacements

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading replacements file: %w", err)
		}
		fromFile, err := document.ParseReplacementsYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		repl = append(repl, fromFile...)
	}

	for _, pair := range pairs {
		search, replace, ok := strings.Cut(pair, "=")
		if !ok || search == "" {
			return nil, fmt.Errorf("invalid --replace value %q (want search=replace)", pair)
		}
		repl = append(repl, document.Replacement{Search: search, Replace: replace})
	}

	return repl, nil
}
