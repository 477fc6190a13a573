package regex

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"
)

// group returns the text of group g, given by number or name. An empty g is
// the whole match.
func group(m regexp2.Match, g string) string {
	var grp *regexp2.Group
	if g == "" {
		grp = m.GroupByNumber(0)
	} else if n, err := strconv.Atoi(g); err == nil {
		grp = m.GroupByNumber(n)
	} else {
		grp = m.GroupByName(g)
	}

	if grp == nil {
		return ""
	}

	return grp.String()
}

// FuncRepl replaces each match with fn applied to group g.
func FuncRepl(fn func(string) string, g string) regexp2.MatchEvaluator {
	return func(m regexp2.Match) string {
		return fn(group(m, g))
	}
}

// MapRepl replaces each match with the entry of mapping for group g, or def
// when there is none.
func MapRepl(mapping map[string]string, g, def string) regexp2.MatchEvaluator {
	return func(m regexp2.Match) string {
		if v, ok := mapping[group(m, g)]; ok {
			return v
		}

		return def
	}
}

// Repl builds an evaluator from a map[string]string or a func(string) string.
func Repl(rep any, g string) (regexp2.MatchEvaluator, error) {
	switch r := rep.(type) {
	case map[string]string:
		return MapRepl(r, g, ""), nil
	case func(string) string:
		return FuncRepl(r, g), nil
	}

	return nil, fmt.Errorf("%w: got %T", ErrInvalidRepl, rep)
}

// ReplaceAll replaces every match of re in input using eval.
func ReplaceAll(re *regexp2.Regexp, input string, eval regexp2.MatchEvaluator) (string, error) {
	return re.ReplaceFunc(input, eval, -1, -1)
}
