package solver

import (
	"strings"

	"github.com/bastiangx/wordsleuth/internal/utils"
)

// admits reports whether a word satisfies every accumulated constraint,
// plus any transient must-include letters forced during suggestion search.
// The checks are conjunctive; their order is only an efficiency choice.
func (p *pattern) admits(word string, highProb map[byte]bool) bool {
	for letter := range p.included {
		if strings.IndexByte(word, letter) < 0 {
			return false
		}
	}
	for letter := range highProb {
		if strings.IndexByte(word, letter) < 0 {
			return false
		}
	}
	for letter := range p.excluded {
		if strings.IndexByte(word, letter) >= 0 {
			return false
		}
	}
	for i := 0; i < p.length && i < len(word); i++ {
		if p.wrongSpot[i][word[i]] {
			return false
		}
		if p.rightSpot[i] != 0 && p.rightSpot[i] != word[i] {
			return false
		}
	}
	for letter, max := range p.maxOccur {
		if utils.CountLetter(word, letter) > max {
			return false
		}
	}
	return true
}

// possibleWords filters the effective word list down to the candidates
// consistent with the pattern, skipping tried and explicitly excluded words.
func (s *Solver) possibleWords() []string {
	base := s.words
	if len(s.effective) > 0 {
		base = s.effective
	}

	tried := make(map[string]bool, len(s.tries))
	for _, t := range s.tries {
		tried[t.Word] = true
	}

	var out []string
	for _, word := range base {
		if tried[word] || s.excludedWords[word] {
			continue
		}
		if !s.pat.admits(word, s.highProb) {
			continue
		}
		out = append(out, word)
	}
	return out
}
