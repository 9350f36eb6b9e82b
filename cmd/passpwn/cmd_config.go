package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NeCr00/passpwn/internal/format"
	"github.com/NeCr00/passpwn/internal/wordgen"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or validate a rule file",
}

var configShowFlags struct {
	markdown bool
}

var configShowCmd = &cobra.Command{
	Use:   "show [rule-file]",
	Short: "Print the effective generation rules",
	Long: `Show renders the rule file (or the built-in default rules when no file
is given) as tables: value sets, leet transformations, and pattern groups
in their declaration order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <rule-file>",
	Short: "Check a rule file and report the first problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadRuleset(args[0])
		if err != nil {
			return err
		}
		n := 0
		for _, g := range rs.Config().Patterns {
			n += len(g.Templates)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d pattern groups, %d templates)\n",
			args[0], len(rs.Config().Patterns), n)
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowFlags.markdown, "markdown", false, "Render tables as Markdown")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	rs, err := loadRuleset(path)
	if err != nil {
		return err
	}
	cfg := rs.Config()

	mode := format.ASCII
	if configShowFlags.markdown {
		mode = format.Markdown
	}
	out := cmd.OutOrStdout()

	values := format.NewTable(mode)
	values.Header("Setting", "Values")
	values.Row("case_variants", joinCaseModes(cfg.CaseVariants))
	values.Row("separators", quoteJoin(cfg.Separators))
	values.Row("special_chars", quoteJoin(cfg.SpecialChars))
	values.Row("num_seq", strings.Join(cfg.NumSeq, " "))
	values.Row("seasons", strings.Join(cfg.Seasons, " "))
	values.Row("quarters", strings.Join(cfg.Quarters, " "))
	values.Row("policy_requirements", joinRequirements(cfg.PolicyRequirements))
	for _, ch := range sortedKeys(cfg.Transformations) {
		values.Row("leet "+ch, strings.Join(cfg.Transformations[ch], " "))
	}
	fmt.Fprintln(out, values.String())

	patterns := format.NewTable(mode)
	patterns.Header("Group", "Templates")
	for _, g := range cfg.Patterns {
		patterns.Row(g.Name, strings.Join(g.Templates, "\n"))
	}
	fmt.Fprintln(out, patterns.String())
	return nil
}

func joinCaseModes(modes []wordgen.CaseMode) string {
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func joinRequirements(reqs []wordgen.Requirement) string {
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// quoteJoin quotes each value so the empty separator stays visible.
func quoteJoin(vals []string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(parts, " ")
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
