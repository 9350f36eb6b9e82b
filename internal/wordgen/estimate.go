package wordgen

import "time"

// Estimate is the pre-generation size of one pattern template: how many
// strings it will feed into the filter, before leet expansion and dedup.
type Estimate struct {
	Group        string
	Template     string
	Combinations int // raw cartesian combinations per base word
	CaseForms    int // emitted strings per combination (raw + case variants)
	PerWord      int
	Total        int // across all base words
}

// Estimates sizes every template without expanding anything: the cartesian
// product arity is the product of the placeholder pool sizes, which depend
// only on the configuration and the year window, not on the base word. Leet
// expansion is excluded; its factor depends on each produced string's
// characters.
func (r *Ruleset) Estimates(p Params) ([]Estimate, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	unit := Context{Word: p.Words[0], Years: YearWindow(now, p.YearsBack), Config: r.cfg}
	forms := 1 + len(r.cfg.CaseVariants)

	var out []Estimate
	for _, g := range r.groups {
		for _, t := range g.templates {
			combos := t.Combinations(unit)
			out = append(out, Estimate{
				Group:        g.name,
				Template:     t.Raw,
				Combinations: combos,
				CaseForms:    forms,
				PerWord:      combos * forms,
				Total:        combos * forms * len(p.Words),
			})
		}
	}
	return out, nil
}
