package wordgen_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/google/go-cmp/cmp"

	"github.com/NeCr00/passpwn/internal/wordgen"
)

var fixedNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func compile(t *testing.T, cfg *wordgen.Config) *wordgen.Ruleset {
	t.Helper()
	rs, err := wordgen.Compile(cfg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return rs
}

func fullConfig() *wordgen.Config {
	cfg := testConfig()
	cfg.CaseVariants = []wordgen.CaseMode{wordgen.CaseLower, wordgen.CaseUpper, wordgen.CaseTitle}
	cfg.Patterns = []wordgen.PatternGroup{
		{Name: "basic", Templates: []string{"{custom_word}", "{custom_word}{num_seq}"}},
		{Name: "dated", Templates: []string{"{custom_word}{separators}{year}", "{season}{year}"}},
		{Name: "decorated", Templates: []string{"{custom_word}{num_seq}{special_chars}"}},
	}
	cfg.Transformations = map[string][]string{
		"a": {"@", "4"},
		"s": {"$"},
	}
	cfg.PolicyRequirements = []wordgen.Requirement{wordgen.RequireNumber}
	return cfg
}

func TestCompile_RejectsUnknownPlaceholder(t *testing.T) {
	cfg := testConfig()
	cfg.Patterns = []wordgen.PatternGroup{{Name: "bad", Templates: []string{"{wat}"}}}
	_, err := wordgen.Compile(cfg)
	if err == nil {
		t.Fatal("expected compile error for unknown placeholder")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error should name the pattern group: %v", err)
	}
}

func TestCompile_RejectsNoPatterns(t *testing.T) {
	if _, err := wordgen.Compile(testConfig()); err == nil {
		t.Fatal("expected compile error for empty pattern set")
	}
}

func TestGenerate_InputValidation(t *testing.T) {
	rs := compile(t, fullConfig())
	ctx := context.Background()

	_, err := rs.Generate(ctx, wordgen.Params{Now: fixedNow})
	if !errors.Is(err, wordgen.ErrNoWords) {
		t.Errorf("empty word list: got %v, want ErrNoWords", err)
	}

	_, err = rs.Generate(ctx, wordgen.Params{Words: []string{"admin"}, YearsBack: -1, Now: fixedNow})
	if !errors.Is(err, wordgen.ErrNegativeYears) {
		t.Errorf("negative years: got %v, want ErrNegativeYears", err)
	}

	_, err = rs.Generate(ctx, wordgen.Params{Words: []string{"admin"}, MinLen: 8, MaxLen: 6, Now: fixedNow})
	if !errors.Is(err, wordgen.ErrLengthBounds) {
		t.Errorf("inverted bounds: got %v, want ErrLengthBounds", err)
	}
}

func TestGenerate_NoDuplicates(t *testing.T) {
	rs := compile(t, fullConfig())
	list, err := rs.Generate(context.Background(), wordgen.Params{
		Words: []string{"admin", "Admin"}, YearsBack: 1, Leet: true, Now: fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) == 0 {
		t.Fatal("expected candidates")
	}
	seen := make(map[string]struct{}, len(list))
	for _, s := range list {
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate in output: %q", s)
		}
		seen[s] = struct{}{}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	rs := compile(t, fullConfig())
	p := wordgen.Params{
		Words: []string{"admin", "backup"}, YearsBack: 2,
		Leet: true, EnforcePolicy: true, MinLen: 6, MaxLen: 16, Now: fixedNow,
	}
	first, err := rs.Generate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := rs.Generate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two identical runs diverged (-first +second):\n%s", diff)
	}
}

func TestGenerate_ParallelMatchesSequential(t *testing.T) {
	rs := compile(t, fullConfig())
	base := wordgen.Params{
		Words: []string{"admin", "backup", "staging"}, YearsBack: 2,
		Leet: true, MinLen: 4, Now: fixedNow,
	}
	seq, err := rs.Generate(context.Background(), base)
	if err != nil {
		t.Fatal(err)
	}
	par := base
	par.Workers = 4
	got, err := rs.Generate(context.Background(), par)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(seq, got); diff != "" {
		t.Errorf("parallel output diverged from sequential (-seq +par):\n%s", diff)
	}
}

func TestGenerate_PolicyEnforced(t *testing.T) {
	cfg := fullConfig()
	cfg.PolicyRequirements = []wordgen.Requirement{wordgen.RequireUppercase, wordgen.RequireNumber}
	rs := compile(t, cfg)
	list, err := rs.Generate(context.Background(), wordgen.Params{
		Words: []string{"admin"}, YearsBack: 1, EnforcePolicy: true, Now: fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) == 0 {
		t.Fatal("expected candidates satisfying the policy")
	}
	for _, s := range list {
		if !strings.ContainsFunc(s, unicode.IsUpper) {
			t.Fatalf("candidate %q has no uppercase letter", s)
		}
		if !strings.ContainsFunc(s, unicode.IsDigit) {
			t.Fatalf("candidate %q has no digit", s)
		}
	}
}

// Length floor plus number policy: "admin123" (8 runes, has digits) stays,
// "admin1" (6 runes, under a floor of 7) goes.
func TestGenerate_LengthAndPolicyScenario(t *testing.T) {
	cfg := &wordgen.Config{
		NumSeq:             []string{"1", "123"},
		Patterns:           []wordgen.PatternGroup{{Name: "basic", Templates: []string{"{custom_word}{num_seq}"}}},
		PolicyRequirements: []wordgen.Requirement{wordgen.RequireNumber},
	}
	rs := compile(t, cfg)
	list, err := rs.Generate(context.Background(), wordgen.Params{
		Words: []string{"admin"}, MinLen: 7, EnforcePolicy: true, Now: fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"admin123"}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Limit(t *testing.T) {
	rs := compile(t, fullConfig())
	list, err := rs.Generate(context.Background(), wordgen.Params{
		Words: []string{"admin"}, YearsBack: 2, Limit: 5, Now: fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 5 {
		t.Errorf("expected 5 candidates under the cap, got %d", len(list))
	}
}

func TestGenerate_LimitAppliesInParallelMode(t *testing.T) {
	rs := compile(t, fullConfig())
	list, err := rs.Generate(context.Background(), wordgen.Params{
		Words: []string{"admin", "backup"}, YearsBack: 2, Limit: 7, Workers: 3, Now: fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 7 {
		t.Errorf("expected 7 candidates under the cap, got %d", len(list))
	}
}

func TestGenerate_Cancellation(t *testing.T) {
	rs := compile(t, fullConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rs.Generate(ctx, wordgen.Params{Words: []string{"admin"}, Now: fixedNow})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// First output for a word is the raw expansion of the first template, then
// its case forms, before anything from later templates.
func TestGenerate_UnitOrder(t *testing.T) {
	cfg := testConfig()
	cfg.CaseVariants = []wordgen.CaseMode{wordgen.CaseUpper}
	cfg.Patterns = []wordgen.PatternGroup{
		{Name: "basic", Templates: []string{"{custom_word}"}},
		{Name: "decorated", Templates: []string{"{custom_word}{special_chars}"}},
	}
	rs := compile(t, cfg)
	list, err := rs.Generate(context.Background(), wordgen.Params{
		Words: []string{"admin", "db"}, Now: fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"admin", "ADMIN",
		"admin!", "ADMIN!", "admin@", "ADMIN@",
		"db", "DB",
		"db!", "DB!", "db@", "DB@",
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("unit order mismatch (-want +got):\n%s", diff)
	}
}

func TestEstimates(t *testing.T) {
	cfg := testConfig()
	cfg.CaseVariants = []wordgen.CaseMode{wordgen.CaseLower, wordgen.CaseUpper}
	cfg.Patterns = []wordgen.PatternGroup{
		{Name: "basic", Templates: []string{"{custom_word}{num_seq}"}},
		{Name: "dated", Templates: []string{"{separators}{year}"}},
	}
	rs := compile(t, cfg)
	got, err := rs.Estimates(wordgen.Params{Words: []string{"admin", "backup"}, YearsBack: 2, Now: fixedNow})
	if err != nil {
		t.Fatal(err)
	}
	want := []wordgen.Estimate{
		{Group: "basic", Template: "{custom_word}{num_seq}", Combinations: 2, CaseForms: 3, PerWord: 6, Total: 12},
		{Group: "dated", Template: "{separators}{year}", Combinations: 6, CaseForms: 3, PerWord: 18, Total: 36},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("estimates mismatch (-want +got):\n%s", diff)
	}
}
