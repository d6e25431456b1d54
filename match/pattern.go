package match

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrInvalidPattern is returned by Compile when the expression does not parse.
var ErrInvalidPattern = errors.New("match: invalid pattern")

// Kind identifies which form a Pattern holds.
type Kind int

const (
	// KindNone is the unset pattern.
	KindNone Kind = iota
	// KindList is an explicit list of names.
	KindList
	// KindDelimited is a comma-delimited string of names.
	KindDelimited
	// KindRegexp is a regular expression.
	KindRegexp
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindDelimited:
		return "delimited"
	case KindRegexp:
		return "regexp"
	default:
		return "none"
	}
}

// Pattern is a name filter. The zero value is unset.
//
// Contract:
// - Immutability: a Pattern is never modified after construction.
// - Concurrency: safe for concurrent use.
type Pattern struct {
	kind      Kind
	names     []string
	delimited string
	re        *regexp.Regexp
}

// List returns a pattern matching exactly the given names.
// An empty list is set but matches nothing.
func List(names ...string) Pattern {
	return Pattern{kind: KindList, names: slices.Clone(names)}
}

// Delimited returns a pattern matching any comma-separated token of s.
// Tokens are not trimmed. An empty string yields an unset pattern.
func Delimited(s string) Pattern {
	if s == "" {
		return Pattern{}
	}
	return Pattern{kind: KindDelimited, delimited: s}
}

// Regexp returns a pattern backed by re. A nil re yields an unset pattern.
func Regexp(re *regexp.Regexp) Pattern {
	if re == nil {
		return Pattern{}
	}
	return Pattern{kind: KindRegexp, re: re}
}

// Compile parses expr as a regular expression pattern.
func Compile(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return Regexp(re), nil
}

// MustCompile is like Compile but panics if expr does not parse.
func MustCompile(expr string) Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Kind reports which form the pattern holds.
func (p Pattern) Kind() Kind {
	return p.kind
}

// IsSet reports whether the pattern participates in filtering.
func (p Pattern) IsSet() bool {
	return p.kind != KindNone
}

// Equal reports whether p and o describe the same filter.
// Regular expressions compare by source text.
func (p Pattern) Equal(o Pattern) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case KindList:
		return slices.Equal(p.names, o.names)
	case KindDelimited:
		return p.delimited == o.delimited
	case KindRegexp:
		return p.re.String() == o.re.String()
	default:
		return true
	}
}

// String renders the pattern for logs.
func (p Pattern) String() string {
	switch p.kind {
	case KindList:
		return "[" + strings.Join(p.names, ",") + "]"
	case KindDelimited:
		return p.delimited
	case KindRegexp:
		return "/" + p.re.String() + "/"
	default:
		return ""
	}
}

// Matches reports whether name is selected by p.
// An unset pattern never matches.
func Matches(p Pattern, name string) bool {
	switch p.kind {
	case KindList:
		return slices.Contains(p.names, name)
	case KindDelimited:
		return slices.Contains(strings.Split(p.delimited, ","), name)
	case KindRegexp:
		return p.re.MatchString(name)
	default:
		return false
	}
}
