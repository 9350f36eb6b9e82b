package wordgen

import (
	"iter"
	"strings"
	"unicode"
)

// LeetVariants lazily enumerates every leetspeak variant of s under table,
// starting with the unmodified original. Table keys are single lowercase
// characters; lookup is case-insensitive but replacements are inserted
// verbatim and untouched characters keep their original casing, so casing
// never multiplies the variant count. Each transformable position chooses
// independently between its original character and each replacement, giving
// a cartesian product over positions (last position varies fastest).
func LeetVariants(s string, table map[string][]string) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(s)
		type slot struct {
			pos     int
			choices []string
		}
		var slots []slot
		for i, r := range runes {
			subs := table[string(unicode.ToLower(r))]
			if len(subs) == 0 {
				continue
			}
			choices := make([]string, 0, len(subs)+1)
			choices = append(choices, string(r))
			choices = append(choices, subs...)
			slots = append(slots, slot{pos: i, choices: choices})
		}
		if len(slots) == 0 {
			yield(s)
			return
		}
		counters := make([]int, len(slots))
		for {
			var b strings.Builder
			next := 0
			for i, r := range runes {
				if next < len(slots) && slots[next].pos == i {
					b.WriteString(slots[next].choices[counters[next]])
					next++
				} else {
					b.WriteRune(r)
				}
			}
			if !yield(b.String()) {
				return
			}
			i := len(counters) - 1
			for ; i >= 0; i-- {
				counters[i]++
				if counters[i] < len(slots[i].choices) {
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
