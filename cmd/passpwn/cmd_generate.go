package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/NeCr00/passpwn/internal/logging"
	"github.com/NeCr00/passpwn/internal/wordgen"
	"github.com/NeCr00/passpwn/internal/wordio"
)

var generateFlags struct {
	words         string
	input         string
	configPath    string
	output        string
	minLen        int
	maxLen        int
	years         int
	limit         int
	parallel      int
	leet          bool
	enforcePolicy bool
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the candidate wordlist",
	Long: `Generate expands every configured pattern for every base word and
writes the filtered, deduplicated wordlist to stdout or a file.

Usage:
  passpwn generate -w admin,backup                # inline base words
  passpwn generate -i words.txt -o wordlist.txt   # words from file, list to file
  passpwn generate -w admin --leet --minlen 8     # leet variants, length floor
  passpwn generate -w admin -c rules.json -y 4    # custom rules, wider year window

Without -c the built-in default rules are used. The output order is
deterministic for a fixed rule file, base-word list, and parameters.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.words, "words", "w", "", "Comma-separated base words")
	f.StringVarP(&generateFlags.input, "input", "i", "", "File with one base word per line")
	f.StringVarP(&generateFlags.configPath, "config", "c", "", "Rule file, JSON or YAML (default: built-in rules)")
	f.StringVarP(&generateFlags.output, "output", "o", "", "Write the wordlist to this file (default: stdout)")
	f.IntVar(&generateFlags.minLen, "minlen", 0, "Discard candidates shorter than this (0 = no floor)")
	f.IntVar(&generateFlags.maxLen, "maxlen", 0, "Discard candidates longer than this (0 = no ceiling)")
	f.IntVarP(&generateFlags.years, "years", "y", 2, "Include the current year and N prior years in {year}")
	f.IntVar(&generateFlags.limit, "limit", 0, "Stop after this many candidates (0 = no cap)")
	f.IntVar(&generateFlags.parallel, "parallel", 1, "Expansion workers; output order is identical either way")
	f.BoolVar(&generateFlags.leet, "leet", false, "Apply leetspeak substitution variants")
	f.BoolVar(&generateFlags.enforcePolicy, "enforce-policy", false, "Keep only candidates meeting the configured policy requirements")
	generateCmd.MarkFlagsOneRequired("words", "input")
	generateCmd.MarkFlagsMutuallyExclusive("words", "input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.New("generate")

	rs, err := loadRuleset(generateFlags.configPath)
	if err != nil {
		return err
	}
	words, err := wordio.ReadWords(generateFlags.words, generateFlags.input)
	if err != nil {
		return err
	}

	list, err := rs.Generate(cmd.Context(), wordgen.Params{
		Words:         words,
		YearsBack:     generateFlags.years,
		MinLen:        generateFlags.minLen,
		MaxLen:        generateFlags.maxLen,
		Limit:         generateFlags.limit,
		Workers:       generateFlags.parallel,
		Leet:          generateFlags.leet,
		EnforcePolicy: generateFlags.enforcePolicy,
	})
	if err != nil {
		return err
	}

	if generateFlags.output == "" {
		return wordio.Write(os.Stdout, list)
	}
	if err := wordio.WriteFile(generateFlags.output, list); err != nil {
		return err
	}
	logger.Info("wrote wordlist", "count", len(list), "path", generateFlags.output)
	return nil
}
