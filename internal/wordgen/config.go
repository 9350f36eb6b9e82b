// Package wordgen is the candidate generation engine: pattern templates are
// expanded over configured value sets, optionally leet-transformed, filtered
// by length and policy, and collected in first-seen order.
package wordgen

import (
	"fmt"
	"strings"
)

// CaseMode selects the output casing applied to an assembled candidate.
type CaseMode int

const (
	CaseLower CaseMode = iota
	CaseUpper
	CaseTitle
)

var caseModeNames = map[string]CaseMode{
	"word_lc": CaseLower,
	"word_uc": CaseUpper,
	"word_tc": CaseTitle,
	"lower":   CaseLower,
	"upper":   CaseUpper,
	"title":   CaseTitle,
}

// ParseCaseMode accepts both the bare tag ("lower") and the template form
// ("{word_lc}") used by config files.
func ParseCaseMode(name string) (CaseMode, error) {
	key := strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
	m, ok := caseModeNames[key]
	if !ok {
		return 0, fmt.Errorf("unknown case variant %q", name)
	}
	return m, nil
}

func (m CaseMode) String() string {
	switch m {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	case CaseTitle:
		return "title"
	}
	return fmt.Sprintf("CaseMode(%d)", int(m))
}

// Apply returns s in the casing selected by m.
func (m CaseMode) Apply(s string) string {
	switch m {
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseTitle:
		return titleCase(s)
	}
	return s
}

// Requirement is one character-class rule a candidate must satisfy when
// policy enforcement is requested.
type Requirement int

const (
	RequireUppercase Requirement = iota
	RequireNumber
	RequireSpecial
)

var requirementNames = map[string]Requirement{
	"uppercase": RequireUppercase,
	"number":    RequireNumber,
	"special":   RequireSpecial,
}

func ParseRequirement(name string) (Requirement, error) {
	r, ok := requirementNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown policy requirement %q", name)
	}
	return r, nil
}

func (r Requirement) String() string {
	switch r {
	case RequireUppercase:
		return "uppercase"
	case RequireNumber:
		return "number"
	case RequireSpecial:
		return "special"
	}
	return fmt.Sprintf("Requirement(%d)", int(r))
}

// PatternGroup is one named category of pattern templates, kept in the order
// the configuration declares it so generation order is reproducible.
type PatternGroup struct {
	Name      string
	Templates []string
}

// Config is the validated, immutable rule set for one generation run.
// It is built once by the config loader and passed by reference everywhere;
// no component mutates it after Compile.
type Config struct {
	CaseVariants       []CaseMode
	Separators         []string
	SpecialChars       []string
	NumSeq             []string
	Seasons            []string
	Quarters           []string
	Patterns           []PatternGroup
	Transformations    map[string][]string
	PolicyRequirements []Requirement
}
