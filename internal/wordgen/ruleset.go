package wordgen

import "fmt"

type compiledGroup struct {
	name      string
	templates []Template
}

// Ruleset is a Config with every pattern template parsed. Compiling up front
// means generation can never fail mid-stream: all placeholder names are
// checked here, once.
type Ruleset struct {
	cfg    *Config
	groups []compiledGroup
}

// Compile parses every template of every pattern group, preserving the
// declaration order of both. Any unknown placeholder or malformed template is
// reported with its group name.
func Compile(cfg *Config) (*Ruleset, error) {
	if len(cfg.Patterns) == 0 {
		return nil, fmt.Errorf("configuration declares no patterns")
	}
	rs := &Ruleset{cfg: cfg}
	for _, g := range cfg.Patterns {
		cg := compiledGroup{name: g.Name}
		for _, raw := range g.Templates {
			t, err := ParseTemplate(raw)
			if err != nil {
				return nil, fmt.Errorf("pattern group %q: %w", g.Name, err)
			}
			cg.templates = append(cg.templates, t)
		}
		rs.groups = append(rs.groups, cg)
	}
	return rs, nil
}

// Config returns the rule set's underlying configuration.
func (r *Ruleset) Config() *Config {
	return r.cfg
}
