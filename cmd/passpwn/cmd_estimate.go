package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NeCr00/passpwn/internal/format"
	"github.com/NeCr00/passpwn/internal/wordgen"
	"github.com/NeCr00/passpwn/internal/wordio"
)

var estimateFlags struct {
	words      string
	input      string
	configPath string
	years      int
	markdown   bool
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Size the expansion per pattern without generating",
	Long: `Estimate prints how many strings each pattern template will feed into
the filter, per base word and in total, without expanding anything.

Counts cover the cartesian placeholder product and the case-variant layer.
Leetspeak expansion is excluded: its factor depends on the characters of
each produced string. Filtering and deduplication shrink the final list
further, so these are upper bounds on the output size.`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringVarP(&estimateFlags.words, "words", "w", "", "Comma-separated base words")
	f.StringVarP(&estimateFlags.input, "input", "i", "", "File with one base word per line")
	f.StringVarP(&estimateFlags.configPath, "config", "c", "", "Rule file, JSON or YAML (default: built-in rules)")
	f.IntVarP(&estimateFlags.years, "years", "y", 2, "Include the current year and N prior years in {year}")
	f.BoolVar(&estimateFlags.markdown, "markdown", false, "Render the table as Markdown")
	estimateCmd.MarkFlagsOneRequired("words", "input")
	estimateCmd.MarkFlagsMutuallyExclusive("words", "input")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	rs, err := loadRuleset(estimateFlags.configPath)
	if err != nil {
		return err
	}
	words, err := wordio.ReadWords(estimateFlags.words, estimateFlags.input)
	if err != nil {
		return err
	}

	ests, err := rs.Estimates(wordgen.Params{Words: words, YearsBack: estimateFlags.years})
	if err != nil {
		return err
	}

	mode := format.ASCII
	if estimateFlags.markdown {
		mode = format.Markdown
	}
	tb := format.NewTable(mode)
	tb.Header("Group", "Pattern", "Combos", "Case forms", "Per word", "Total")
	grand := 0
	for _, e := range ests {
		tb.Row(e.Group, e.Template, e.Combinations, e.CaseForms,
			format.FmtCount(e.PerWord), format.FmtCount(e.Total))
		grand += e.Total
	}
	tb.Footer("", "", "", "", "TOTAL", format.FmtCount(grand))
	tb.Columns(
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
		format.ColumnConfig{Number: 6, Align: format.AlignRight},
	)
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}
