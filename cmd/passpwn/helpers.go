package main

import (
	"github.com/NeCr00/passpwn/internal/config"
	"github.com/NeCr00/passpwn/internal/wordgen"
)

// loadRuleset loads the rule file at path, or the embedded default rules when
// path is empty.
func loadRuleset(path string) (*wordgen.Ruleset, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
