package wordgen

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Context carries the per-unit state one template expansion needs: the base
// word being decorated, the precomputed year window, and the rule set.
type Context struct {
	Word   string
	Years  []string
	Config *Config
}

// YearWindow returns the string forms of [year-back .. year] for the year of
// now, oldest first. back=0 yields just the current year.
func YearWindow(now time.Time, back int) []string {
	cur := now.Year()
	out := make([]string, 0, back+1)
	for y := cur - back; y <= cur; y++ {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

// resolve returns the ordered value pool for one placeholder. It is total:
// a placeholder with nothing configured resolves to an empty pool, which
// zeroes out the containing template's cartesian product (see Template.Expand).
func (c Context) resolve(tok Token) []string {
	switch tok {
	case TokenCustomWord:
		return []string{c.Word}
	case TokenWordLC:
		return []string{strings.ToLower(c.Word)}
	case TokenWordUC:
		return []string{strings.ToUpper(c.Word)}
	case TokenWordTC:
		return []string{titleCase(c.Word)}
	case TokenYear:
		return c.Years
	case TokenQuarter:
		return c.Config.Quarters
	case TokenSeason:
		return c.Config.Seasons
	case TokenSpecialChars:
		return c.Config.SpecialChars
	case TokenNumSeq:
		return c.Config.NumSeq
	case TokenSeparators:
		return c.Config.Separators
	}
	return nil
}

// titleCase upper-cases the letter starting each letter run and lower-cases
// the rest, leaving digits and punctuation untouched ("admin-pass1x" →
// "Admin-Pass1X").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
