// Package dictionary loads fixed-length word lists and word score tables
// from plain text files and indexes them for fast membership lookups.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is an immutable, ordered word list plus a trie index for
// membership checks. Safe for concurrent readers once loaded.
type Dictionary struct {
	Path  string
	Words []string
	index *patricia.Trie
}

// Load reads a word list file (one word per line, line terminators
// stripped), keeps only words of the given length, and optionally drops
// simple plural forms. The plural rule is a literal heuristic: a trailing
// "s" excludes the word unless it ends in "ss".
func Load(path string, wordLength int, excludePlurals bool) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	d := &Dictionary{
		Path:  path,
		index: patricia.NewTrie(),
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), "\r\n")
		if len(word) != wordLength {
			continue
		}
		if excludePlurals && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
			continue
		}
		d.Words = append(d.Words, word)
		d.index.Insert(patricia.Prefix(word), struct{}{})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	log.Debugf("Loaded %d words of length %d from %s", len(d.Words), wordLength, path)
	return d, nil
}

// Contains reports whether a word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	return d.index.Get(patricia.Prefix(word)) != nil
}

// Len returns the number of loaded words.
func (d *Dictionary) Len() int {
	return len(d.Words)
}

// LoadScores reads a tab-separated score file, one "word<TAB>score" entry
// per line with a floating-point score. Blank lines are skipped; malformed
// lines are an error.
func LoadScores(path string) (map[string]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open score file %s: %w", path, err)
	}
	defer file.Close()

	scores := make(map[string]float64)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		word, value, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("score file %s line %d: missing tab separator", path, lineNo)
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("score file %s line %d: %w", path, lineNo, err)
		}
		scores[word] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score file %s: %w", path, err)
	}

	log.Debugf("Loaded %d word scores from %s", len(scores), path)
	return scores, nil
}
