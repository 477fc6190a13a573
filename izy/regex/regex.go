// Package regex builds regular expressions out of small readable pieces and
// compiles them with a backtracking engine, so lookarounds, backreferences
// and conditionals are available.
package regex

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/exp/slices"
)

var ErrInvalidRepl = errors.New("regex: replacement must be a map or a function")

type Flags struct {
	IgnoreCase bool
	Multiline  bool
	// DotAll lets . match newlines.
	DotAll bool
	// Verbose ignores unescaped whitespace and # comments in the pattern.
	Verbose     bool
	ECMAScript  bool
	RightToLeft bool
}

func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.None
	if f.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if f.Multiline {
		opts |= regexp2.Multiline
	}
	if f.DotAll {
		opts |= regexp2.Singleline
	}
	if f.Verbose {
		opts |= regexp2.IgnorePatternWhitespace
	}
	if f.ECMAScript {
		opts |= regexp2.ECMAScript
	}
	if f.RightToLeft {
		opts |= regexp2.RightToLeft
	}

	return opts
}

// Make joins patterns and compiles the result.
func Make(flags Flags, patterns ...string) (*regexp2.Regexp, error) {
	return regexp2.Compile(Join(patterns...), flags.options())
}

func MustMake(flags Flags, patterns ...string) *regexp2.Regexp {
	re, err := Make(flags, patterns...)
	if err != nil {
		panic(fmt.Sprintf("regex: Make(%q): %v", Join(patterns...), err))
	}

	return re
}

func Join(patterns ...string) string {
	return strings.Join(patterns, "")
}

func Grouped(patterns ...string) string {
	return "(" + Join(patterns...) + ")"
}

func NamedGroup(name string, patterns ...string) string {
	return "(?<" + name + ">" + Join(patterns...) + ")"
}

func NonCapturing(patterns ...string) string {
	return "(?:" + Join(patterns...) + ")"
}

func anywhere(immediately bool) string {
	if immediately {
		return ""
	}
	return ".*"
}

// FollowedBy asserts that the pattern comes next, or anywhere later on the
// line when immediately is false.
func FollowedBy(immediately bool, patterns ...string) string {
	return "(?=" + anywhere(immediately) + Join(patterns...) + ")"
}

func NotFollowedBy(immediately bool, patterns ...string) string {
	return "(?!" + anywhere(immediately) + Join(patterns...) + ")"
}

// Following asserts that the pattern ends right before the current position.
func Following(patterns ...string) string {
	return "(?<=" + Join(patterns...) + ")"
}

func NotFollowing(patterns ...string) string {
	return "(?<!" + Join(patterns...) + ")"
}

var (
	Lookahead     = FollowedBy
	NegLookahead  = NotFollowedBy
	PrecededBy    = Following
	NotPrecededBy = NotFollowing
	Lookbehind    = Following
	NegLookbehind = NotFollowing
)

func Wordbounded(patterns ...string) string {
	return `\b` + Join(patterns...) + `\b`
}

// IfMatched matches then when the named group took part in the match so far,
// and otherwise when it did not.
func IfMatched(group, then, otherwise string) string {
	return "(?(" + group + ")" + then + "|" + otherwise + ")"
}

// AnyOf alternates the patterns, longest first so that the longest literal
// wins. Patterns of equal length keep their order.
func AnyOf(patterns ...string) string {
	sorted := slices.Clone(patterns)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})

	return NonCapturing(strings.Join(sorted, "|"))
}

func Charset(chars string) string {
	return "[" + chars + "]"
}

func AnyCharBut(chars string) string {
	return "[^" + chars + "]"
}

// BagOfPatterns matches where every pattern appears somewhere ahead, in any
// order.
func BagOfPatterns(patterns ...string) string {
	var sb strings.Builder
	for _, p := range patterns {
		sb.WriteString(FollowedBy(false, p))
	}

	return sb.String()
}
