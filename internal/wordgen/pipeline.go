package wordgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Input validation errors, surfaced before any generation starts.
var (
	ErrNoWords       = errors.New("at least one base word is required")
	ErrNegativeYears = errors.New("years back must be non-negative")
	ErrLengthBounds  = errors.New("max length is below min length")
)

// Params are the scalar run parameters for one generation pass.
type Params struct {
	Words         []string
	YearsBack     int
	MinLen        int // 0 = unconstrained
	MaxLen        int // 0 = unconstrained
	Limit         int // soft cap on output size, 0 = uncapped
	Workers       int // >1 enables parallel expansion across units
	Leet          bool
	EnforcePolicy bool

	// Now anchors the year window; the zero value means time.Now().
	Now time.Time
}

func (p Params) validate() error {
	if len(p.Words) == 0 {
		return ErrNoWords
	}
	if p.YearsBack < 0 {
		return ErrNegativeYears
	}
	if p.MinLen > 0 && p.MaxLen > 0 && p.MaxLen < p.MinLen {
		return fmt.Errorf("%w: min %d, max %d", ErrLengthBounds, p.MinLen, p.MaxLen)
	}
	return nil
}

// Generate runs the full pipeline: every (base word, pattern group, template)
// unit is expanded, case-varied, optionally leet-transformed, filtered, and
// fed to a single deduplicating collector. Output order is deterministic for
// fixed inputs: words in given order, groups and templates in declaration
// order, combinations in nested-loop order, case forms after their raw form.
// Candidates stream through the stages one at a time; only the deduplicated
// result is materialized.
func (r *Ruleset) Generate(ctx context.Context, p Params) ([]string, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	years := YearWindow(now, p.YearsBack)
	filter := NewFilter(r.cfg, p.MinLen, p.MaxLen, p.EnforcePolicy)

	if p.Workers > 1 {
		return r.generateParallel(ctx, p, years, filter)
	}

	col := NewCollector(p.Limit)
	for _, word := range p.Words {
		unit := Context{Word: word, Years: years, Config: r.cfg}
		for _, g := range r.groups {
			for _, t := range g.templates {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if !r.expandUnit(unit, t, p.Leet, filter, col.Add) {
					return col.List(), nil
				}
			}
		}
	}
	return col.List(), nil
}

// expandUnit streams one (word, template) unit through the case, leet and
// filter stages into sink. It reports false when the sink asked production to
// stop.
func (r *Ruleset) expandUnit(unit Context, t Template, leet bool, f Filter, sink func(string) bool) bool {
	for raw := range t.Expand(unit) {
		for cased := range CaseForms(raw, r.cfg.CaseVariants) {
			if !leet {
				if f.Accepts(cased) && !sink(cased) {
					return false
				}
				continue
			}
			for v := range LeetVariants(cased, r.cfg.Transformations) {
				if f.Accepts(v) && !sink(v) {
					return false
				}
			}
		}
	}
	return true
}

// generateParallel expands independent units concurrently. Each worker
// filters its own unit into a private slice indexed by unit position; the
// dedup pass then walks units in the same order the sequential path would
// have visited them, so the output is byte-identical to Workers==1. The
// dedup pass is the only stage that sees the merged stream.
func (r *Ruleset) generateParallel(ctx context.Context, p Params, years []string, f Filter) ([]string, error) {
	type job struct {
		idx  int
		unit Context
		tmpl Template
	}
	var jobs []job
	for _, word := range p.Words {
		unit := Context{Word: word, Years: years, Config: r.cfg}
		for _, grp := range r.groups {
			for _, t := range grp.templates {
				jobs = append(jobs, job{idx: len(jobs), unit: unit, tmpl: t})
			}
		}
	}

	results := make([][]string, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)
	for _, jb := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var out []string
			r.expandUnit(jb.unit, jb.tmpl, p.Leet, f, func(s string) bool {
				out = append(out, s)
				return true
			})
			results[jb.idx] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	col := NewCollector(p.Limit)
merge:
	for _, unit := range results {
		for _, s := range unit {
			if !col.Add(s) {
				break merge
			}
		}
	}
	return col.List(), nil
}
