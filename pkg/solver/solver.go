/*
Package solver derives constraints from Wordle-style guess feedback and
proposes ranked candidate guesses.

A Solver owns one immutable word list. Each accepted guess re-derives the
constraint pattern from the full try history; SuggestedWords then filters the
list down to consistent candidates and ranks them by positional letter
probability (or an external score table).

When many letters are already known, plain ranking can collapse to a very
narrow list. SuggestedWords therefore runs a relaxing search: it forces the
top-i globally most frequent unseen letters as extra must-include constraints,
for i from the number of unknown letters down to one, and returns the first
non-empty candidate set. This keeps suggestions information-dense while
guaranteeing a non-empty result whenever any valid candidate exists.

MultiSolver coordinates several Solvers bound to different word lists with a
try-count cutover policy; see multi.go.
*/
package solver

import (
	"sort"

	"github.com/charmbracelet/log"
)

// DefaultWordLength is the classic five-letter puzzle size.
const DefaultWordLength = 5

// Options configures a Solver. The zero value is usable: five-letter words,
// probability ranking, no score table, no effective word lists.
// Each solver instance gets its own copy, nothing here is shared state.
type Options struct {
	// WordLength is the fixed word length; 0 means DefaultWordLength.
	WordLength int
	// Scores optionally ranks candidates instead of positional probability.
	// It only applies when every candidate of a result set is covered.
	Scores map[string]float64
	// OrderByScoreDesc flips score-table ordering from ascending to descending.
	OrderByScoreDesc bool
	// EffectiveLists optionally maps word -> feedback symbols -> the candidate
	// subset known to remain for that exact (word, feedback) combination.
	// When tries match one or more entries, the search base narrows to the
	// intersection of all matched subsets.
	EffectiveLists map[string]map[string][]string
}

// Solver tracks one round of guessing against a single word list.
// Not safe for concurrent use; word lists are read-only and may be shared.
type Solver struct {
	wordLength    int
	words         []string
	scores        map[string]float64
	orderDesc     bool
	combos        map[string]map[string][]string
	excludedWords map[string]bool
	tries         []Guess
	pat           pattern
	effective     []string
	highProb      map[byte]bool
}

// New creates a Solver over the given word list. The list is kept by
// reference and must not be mutated afterwards.
func New(words []string, opts Options) *Solver {
	length := opts.WordLength
	if length <= 0 {
		length = DefaultWordLength
	}
	s := &Solver{
		wordLength: length,
		words:      words,
		scores:     opts.Scores,
		orderDesc:  opts.OrderByScoreDesc,
		combos:     opts.EffectiveLists,
	}
	s.Reset()
	return s
}

// WordLength returns the configured fixed word length.
func (s *Solver) WordLength() int {
	return s.wordLength
}

// Reset clears the try history and every derived constraint,
// ready for a new hidden word.
func (s *Solver) Reset() {
	s.tries = nil
	s.excludedWords = make(map[string]bool)
	s.updateState()
}

// Tries returns a copy of the try history, oldest first.
func (s *Solver) Tries() []Guess {
	out := make([]Guess, len(s.tries))
	copy(out, s.tries)
	return out
}

// SetExcludedWords replaces the caller-supplied exclusion set.
func (s *Solver) SetExcludedWords(words []string) {
	s.excludedWords = make(map[string]bool, len(words))
	for _, word := range words {
		s.excludedWords[word] = true
	}
}

// InputGuessResult records a guess and its feedback, then re-derives the
// constraint pattern. Malformed input is rejected before any state changes.
func (s *Solver) InputGuessResult(word, symbols string) error {
	if err := validateGuess(word, symbols, s.wordLength); err != nil {
		return err
	}
	s.tries = append(s.tries, Guess{Word: word, Symbols: symbols})
	s.updateState()
	return nil
}

// RemoveLastTry pops the most recent try and re-derives state.
// No-op on an empty history.
func (s *Solver) RemoveLastTry() {
	if len(s.tries) == 0 {
		return
	}
	s.tries = s.tries[:len(s.tries)-1]
	s.updateState()
}

// Conflicts reports contradictions in the current constraints. A non-empty
// result usually means the latest feedback entry was mistyped; callers
// typically respond by removing the last try.
func (s *Solver) Conflicts() []Conflict {
	return s.pat.conflicts(s.highProb)
}

// PossibleWords returns every word consistent with the current constraints,
// in word-list order. An empty result is a valid outcome, not an error.
func (s *Solver) PossibleWords() []string {
	return s.possibleWords()
}

// SuggestedWords returns ranked guess candidates via the relaxing
// forced-letter search described in the package comment. Empty only when no
// word is consistent with the constraints at all.
func (s *Solver) SuggestedWords() []string {
	all := s.possibleWords()
	if len(all) == 0 {
		return nil
	}

	letters := s.suggestedLettersByFreq(all)
	if len(letters) == 0 {
		return nil
	}

	unknown := s.wordLength - len(s.pat.included)
	for i := unknown; i >= 1; i-- {
		n := i
		if n > len(letters) {
			n = len(letters)
		}
		s.highProb = make(map[byte]bool, n)
		for _, letter := range letters[:n] {
			s.highProb[letter] = true
		}
		words := s.possibleWords()
		s.highProb = nil
		if len(words) > 0 {
			log.Debugf("suggestion found with %d forced letters, %d candidates", n, len(words))
			return s.rankWords(words)
		}
	}
	log.Debugf("forced-letter search exhausted, falling back to %d base candidates", len(all))
	return s.rankWords(all)
}

// suggestedLettersByFreq returns the letters not yet constrained, most
// frequent first. Frequency ties keep alphabet order.
func (s *Solver) suggestedLettersByFreq(words []string) []byte {
	probs := letterProbability(words)
	if probs == nil {
		return nil
	}
	var letters []byte
	for i := 0; i < len(alphabet); i++ {
		letter := alphabet[i]
		if s.pat.included[letter] || s.pat.excluded[letter] || s.highProb[letter] {
			continue
		}
		letters = append(letters, letter)
	}
	sort.SliceStable(letters, func(i, j int) bool {
		return probs[letters[i]] > probs[letters[j]]
	})
	return letters
}

// updateState re-derives the pattern and the effective word list from the
// try history. The transient highProb set is owned by SuggestedWords and
// deliberately left alone here.
func (s *Solver) updateState() {
	s.pat = derivePattern(s.tries, s.wordLength)
	s.effective = s.matchEffectiveLists()
}

// matchEffectiveLists intersects the candidate subsets of every matched
// (word, feedback) combination. Nil when nothing matches; possibleWords then
// falls back to the full list.
func (s *Solver) matchEffectiveLists() []string {
	if len(s.combos) == 0 {
		return nil
	}
	var matched [][]string
	for _, t := range s.tries {
		byWord, ok := s.combos[t.Word]
		if !ok {
			continue
		}
		if subset, ok := byWord[t.Symbols]; ok {
			matched = append(matched, subset)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	rest := make([]map[string]bool, 0, len(matched)-1)
	for _, subset := range matched[1:] {
		set := make(map[string]bool, len(subset))
		for _, word := range subset {
			set[word] = true
		}
		rest = append(rest, set)
	}

	var inter []string
	seen := make(map[string]bool, len(matched[0]))
	for _, word := range matched[0] {
		if seen[word] {
			continue
		}
		seen[word] = true
		inAll := true
		for _, set := range rest {
			if !set[word] {
				inAll = false
				break
			}
		}
		if inAll {
			inter = append(inter, word)
		}
	}
	return inter
}
