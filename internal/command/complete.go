package command

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Candidates returns every word the command line can start with: the ex
// words followed by all command names.
func Candidates() []string {
	out := make([]string, 0, len(exCommands)+int(kindCount))
	out = append(out, exCommands...)
	for _, k := range Kinds() {
		out = append(out, k.String())
	}
	return out
}

// Complete returns completions for the first word of a command line.
// Candidates starting with prefix come first, in table order, followed by
// the remaining fuzzy matches ranked by score.
func Complete(prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil
	}
	candidates := Candidates()

	var out []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, m := range fuzzy.Find(prefix, candidates) {
		if !seen[m.Str] {
			seen[m.Str] = true
			out = append(out, m.Str)
		}
	}
	return out
}
