package wordgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Filter is the stateless accept/reject predicate applied to every candidate
// before collection. A zero length bound means unconstrained in that
// direction; lengths are counted in runes.
type Filter struct {
	MinLen   int
	MaxLen   int
	Policies []Requirement

	special map[rune]bool
}

// NewFilter builds the filter for one run. Policy requirements are taken from
// the configuration only when enforce is set; the special-character check
// matches any rune occurring in the configured special_chars strings.
func NewFilter(cfg *Config, minLen, maxLen int, enforce bool) Filter {
	f := Filter{MinLen: minLen, MaxLen: maxLen}
	if !enforce {
		return f
	}
	f.Policies = cfg.PolicyRequirements
	f.special = make(map[rune]bool)
	for _, s := range cfg.SpecialChars {
		for _, r := range s {
			f.special[r] = true
		}
	}
	return f
}

// Accepts reports whether the candidate satisfies the length bounds and every
// configured policy requirement.
func (f Filter) Accepts(s string) bool {
	n := utf8.RuneCountInString(s)
	if f.MinLen > 0 && n < f.MinLen {
		return false
	}
	if f.MaxLen > 0 && n > f.MaxLen {
		return false
	}
	for _, p := range f.Policies {
		switch p {
		case RequireUppercase:
			if !strings.ContainsFunc(s, unicode.IsUpper) {
				return false
			}
		case RequireNumber:
			if !strings.ContainsFunc(s, unicode.IsDigit) {
				return false
			}
		case RequireSpecial:
			if !strings.ContainsFunc(s, func(r rune) bool { return f.special[r] }) {
				return false
			}
		}
	}
	return true
}
