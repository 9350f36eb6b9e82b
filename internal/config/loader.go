// Package config loads generation rule files and compiles them into an
// immutable wordgen.Ruleset. Rule files are JSON or YAML with the same shape
// either way; YAML is a superset of JSON, so a single decode path covers
// both. All validation happens here, before any generation starts.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/NeCr00/passpwn/internal/wordgen"
)

//go:embed default.json
var defaultRules []byte

type rawConfig struct {
	CaseVariants []string `yaml:"case_variants"`
	Separators   []string `yaml:"separators"`
	Decorations  struct {
		SpecialChars []string `yaml:"special_chars"`
		NumSeq       []string `yaml:"num_seq"`
	} `yaml:"decorations"`
	Seasons            []string            `yaml:"seasons"`
	Quarters           []string            `yaml:"quarters"`
	Patterns           yaml.Node           `yaml:"patterns"`
	Transformations    map[string][]string `yaml:"transformations"`
	PolicyRequirements []string            `yaml:"policy_requirements"`
}

// Load reads, validates, and compiles a rule file.
func Load(path string) (*wordgen.Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return rs, nil
}

// Default compiles the embedded default rule set.
func Default() (*wordgen.Ruleset, error) {
	rs, err := Parse(defaultRules)
	if err != nil {
		return nil, fmt.Errorf("embedded default config: %w", err)
	}
	return rs, nil
}

// Parse decodes one rule document and compiles it.
func Parse(data []byte) (*wordgen.Ruleset, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	cfg := &wordgen.Config{
		Separators:      raw.Separators,
		SpecialChars:    raw.Decorations.SpecialChars,
		NumSeq:          raw.Decorations.NumSeq,
		Seasons:         raw.Seasons,
		Quarters:        raw.Quarters,
		Transformations: make(map[string][]string, len(raw.Transformations)),
	}

	for _, name := range raw.CaseVariants {
		m, err := wordgen.ParseCaseMode(name)
		if err != nil {
			return nil, err
		}
		cfg.CaseVariants = append(cfg.CaseVariants, m)
	}

	for key, subs := range raw.Transformations {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("transformation key %q: must be a single character", key)
		}
		cfg.Transformations[strings.ToLower(key)] = subs
	}

	for _, name := range raw.PolicyRequirements {
		r, err := wordgen.ParseRequirement(name)
		if err != nil {
			return nil, err
		}
		cfg.PolicyRequirements = append(cfg.PolicyRequirements, r)
	}

	groups, err := patternGroups(&raw.Patterns)
	if err != nil {
		return nil, err
	}
	cfg.Patterns = groups

	return wordgen.Compile(cfg)
}

// patternGroups decodes the patterns mapping while preserving the order its
// keys are declared in, which a plain map[string][]string would lose. The
// declaration order fixes the generation order, so it has to survive loading.
func patternGroups(node *yaml.Node) ([]wordgen.PatternGroup, error) {
	if node.Kind == 0 {
		return nil, fmt.Errorf("missing required key %q", "patterns")
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("patterns: expected a mapping of category name to template list")
	}
	var groups []wordgen.PatternGroup
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var templates []string
		if err := val.Decode(&templates); err != nil {
			return nil, fmt.Errorf("patterns.%s: %w", key.Value, err)
		}
		groups = append(groups, wordgen.PatternGroup{Name: key.Value, Templates: templates})
	}
	return groups, nil
}
