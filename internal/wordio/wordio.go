// Package wordio handles base-word input and wordlist output for the CLI.
package wordio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoSource is returned when neither an inline word list nor an input file
// is given.
var ErrNoSource = errors.New("no base words: give an inline list or an input file")

// ReadWords returns the ordered base-word list from either an inline
// comma-separated list or a file with one word per line. Words are
// whitespace-trimmed, empties are dropped, and repeats keep only the first
// occurrence.
func ReadWords(inline, path string) ([]string, error) {
	var raw []string
	switch {
	case inline != "":
		raw = strings.Split(inline, ",")
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read words: %w", err)
		}
		raw = strings.Split(string(data), "\n")
	default:
		return nil, ErrNoSource
	}

	seen := make(map[string]struct{}, len(raw))
	var words []string
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words, nil
}

// Write emits one candidate per line.
func Write(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the list to path, one candidate per line.
func WriteFile(path string, words []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Write(f, words); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}
