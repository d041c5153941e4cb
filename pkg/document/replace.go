package document

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Replacement is a single literal substitution: every occurrence of Search
// is replaced by Replace. No pattern matching is involved.
type Replacement struct {
	Search  string `yaml:"search"`
	Replace string `yaml:"replace"`
}

// Replacements is an ordered list of literal substitutions applied to raw
// file content before parsing. Order matters: each pair is applied in a
// single pass over the text produced by the previous pair, so a later
// Search can match text introduced by an earlier Replace. The text is never
// re-scanned for a pair that has already run.
type Replacements []Replacement

// Apply runs every replacement over text in order and returns the result.
func (r Replacements) Apply(text string) string {
	for _, p := range r {
		text = strings.ReplaceAll(text, p.Search, p.Replace)
	}
	return text
}

// ParseReplacementsYAML decodes a YAML mapping of search strings to
// replacement strings, preserving the key order of the document. YAML is
// used here precisely because its mappings have a document order; callers
// that need deterministic substitution write the pairs in the order they
// want them applied.
func ParseReplacementsYAML(data []byte) (Replacements, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing replacements: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing replacements: top-level YAML value must be a mapping")
	}
	repl := make(Replacements, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, val := mapping.Content[i], mapping.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parsing replacements: value for %q must be a scalar", key.Value)
		}
		repl = append(repl, Replacement{Search: key.Value, Replace: val.Value})
	}
	return repl, nil
}
