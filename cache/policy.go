package cache

import (
	"strconv"
	"strings"
)

// Policy configures the size bound of a store.
type Policy struct {
	// Max is the live entry bound. Zero or negative means unbounded.
	Max int
}

// UnboundedPolicy returns a policy that never evicts for capacity.
func UnboundedPolicy() Policy {
	return Policy{}
}

// Bounded reports whether capacity eviction is enabled.
func (p Policy) Bounded() bool {
	return p.Max > 0
}

// Exceeded reports whether n live entries is over the bound.
func (p Policy) Exceeded(n int) bool {
	return p.Bounded() && n > p.Max
}

// ParseMax parses a size bound supplied as text. Like parseInt it reads an
// optional sign and the leading decimal digits and ignores the rest.
// Non-numeric, zero and negative input all yield 0 (unbounded).
func ParseMax(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
