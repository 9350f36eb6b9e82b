package wordgen

import "fmt"

// Token identifies one placeholder recognized inside a pattern template.
// The set is closed: template parsing rejects anything else at load time,
// so expansion never sees an unknown token.
type Token int

const (
	TokenCustomWord Token = iota
	TokenWordLC
	TokenWordUC
	TokenWordTC
	TokenYear
	TokenQuarter
	TokenSeason
	TokenSpecialChars
	TokenNumSeq
	TokenSeparators
)

var tokenNames = map[string]Token{
	"custom_word":   TokenCustomWord,
	"word_lc":       TokenWordLC,
	"word_uc":       TokenWordUC,
	"word_tc":       TokenWordTC,
	"year":          TokenYear,
	"quarter":       TokenQuarter,
	"season":        TokenSeason,
	"special_chars": TokenSpecialChars,
	"num_seq":       TokenNumSeq,
	"separators":    TokenSeparators,
}

// ParseToken maps a placeholder name (the text between braces) to its Token.
func ParseToken(name string) (Token, bool) {
	t, ok := tokenNames[name]
	return t, ok
}

func (t Token) String() string {
	for name, tok := range tokenNames {
		if tok == t {
			return name
		}
	}
	return fmt.Sprintf("Token(%d)", int(t))
}
