package wordgen

import (
	"fmt"
	"iter"
	"strings"
)

// Segment is one piece of a parsed template: either literal text or a
// placeholder token.
type Segment struct {
	Literal     string
	Token       Token
	Placeholder bool
}

// Template is one parsed pattern, e.g. "{custom_word}{separators}{year}".
// Parsing happens once at compile time; expansion is a pure read.
type Template struct {
	Raw      string
	Segments []Segment
}

// ParseTemplate splits raw into literal and placeholder segments. An
// unterminated "{" or a placeholder outside the recognized token set is a
// configuration error. A stray "}" is treated as literal text.
func ParseTemplate(raw string) (Template, error) {
	t := Template{Raw: raw}
	rest := raw
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			t.Segments = append(t.Segments, Segment{Literal: rest})
			break
		}
		if open > 0 {
			t.Segments = append(t.Segments, Segment{Literal: rest[:open]})
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return Template{}, fmt.Errorf("pattern %q: unterminated placeholder", raw)
		}
		name := rest[open+1 : open+end]
		tok, ok := ParseToken(name)
		if !ok {
			return Template{}, fmt.Errorf("pattern %q: unknown placeholder %q", raw, name)
		}
		t.Segments = append(t.Segments, Segment{Token: tok, Placeholder: true})
		rest = rest[open+end+1:]
	}
	return t, nil
}

// pools resolves every placeholder segment's value set in template order.
func (t Template) pools(ctx Context) [][]string {
	var out [][]string
	for _, seg := range t.Segments {
		if seg.Placeholder {
			out = append(out, ctx.resolve(seg.Token))
		}
	}
	return out
}

// Expand lazily enumerates every placeholder combination of the template for
// one generation context. Combinations follow nested-loop order: the last
// placeholder varies fastest, values in configured order. A placeholder with
// an empty value pool makes the whole product empty, so the template yields
// nothing for this context.
func (t Template) Expand(ctx Context) iter.Seq[string] {
	return func(yield func(string) bool) {
		pools := t.pools(ctx)
		for _, p := range pools {
			if len(p) == 0 {
				return
			}
		}
		counters := make([]int, len(pools))
		for {
			var b strings.Builder
			slot := 0
			for _, seg := range t.Segments {
				if seg.Placeholder {
					b.WriteString(pools[slot][counters[slot]])
					slot++
				} else {
					b.WriteString(seg.Literal)
				}
			}
			if !yield(b.String()) {
				return
			}
			i := len(counters) - 1
			for ; i >= 0; i-- {
				counters[i]++
				if counters[i] < len(pools[i]) {
					break
				}
				counters[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// Combinations counts the expansions Expand would produce, without producing
// them.
func (t Template) Combinations(ctx Context) int {
	n := 1
	for _, p := range t.pools(ctx) {
		n *= len(p)
	}
	return n
}

// CaseForms emits s itself followed by each configured case variant of s, in
// configured order. Coinciding forms (a digits-only candidate, a base word
// already lower-case) are emitted anyway; the collector folds them later.
func CaseForms(s string, modes []CaseMode) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(s) {
			return
		}
		for _, m := range modes {
			if !yield(m.Apply(s)) {
				return
			}
		}
	}
}
