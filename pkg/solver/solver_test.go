package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateFilter(t *testing.T) {
	words := []string{"crane", "slate", "about", "pride", "drape"}
	s := New(words, Options{})

	// Hidden word "drape": r, a and e confirmed in place, c and n absent.
	require.NoError(t, s.InputGuessResult("crane", "_##_#"))
	require.Equal(t, []string{"drape"}, s.PossibleWords())
}

func TestFilterExcludesTriedAndExcludedWords(t *testing.T) {
	words := []string{"crane", "slate", "drape", "grape"}
	s := New(words, Options{})

	require.NoError(t, s.InputGuessResult("crane", "_##_#"))
	possible := s.PossibleWords()
	require.NotContains(t, possible, "crane", "tried word must be dropped")
	require.ElementsMatch(t, []string{"drape", "grape"}, possible)

	s.SetExcludedWords([]string{"grape"})
	require.Equal(t, []string{"drape"}, s.PossibleWords())
}

func TestFilterEmptyWhenInconsistent(t *testing.T) {
	// Every remaining word contains 'a', which the feedback excludes.
	words := []string{"apple", "allot", "alloy", "aptly"}
	s := New(words, Options{})

	require.NoError(t, s.InputGuessResult("apple", "_?_#_"))
	require.Empty(t, s.PossibleWords())
	require.Empty(t, s.SuggestedWords())
}

func TestFilterIdempotence(t *testing.T) {
	words := []string{"crane", "slate", "about", "pride", "drape", "grape"}
	s := New(words, Options{})
	require.NoError(t, s.InputGuessResult("crane", "_##_#"))
	first := s.PossibleWords()

	again := New(first, Options{})
	require.NoError(t, again.InputGuessResult("crane", "_##_#"))
	require.Equal(t, first, again.PossibleWords())
}

func TestSuggestedWordsForcesFrequentLetters(t *testing.T) {
	// "abcde" is the only word containing all five of the most frequent
	// letters; the forced-letter search should single it out immediately.
	words := []string{"aaaaa", "aabbb", "abcde"}
	s := New(words, Options{})

	require.Equal(t, []string{"abcde"}, s.SuggestedWords())
}

func TestSuggestedWordsRelaxesUntilNonEmpty(t *testing.T) {
	// No word holds the top letters together; the search must relax down
	// to a single forced letter rather than give up.
	words := []string{"aaaaa"}
	s := New(words, Options{})

	require.Equal(t, []string{"aaaaa"}, s.SuggestedWords())
}

func TestSuggestedWordsFallbackWhenAllLettersKnown(t *testing.T) {
	// All five letters are known included, so no letters are left to
	// force; the ranked base set comes back instead of nothing.
	words := []string{"abdec", "badec"}
	s := New(words, Options{})

	require.NoError(t, s.InputGuessResult("edcba", "?????"))
	suggested := s.SuggestedWords()
	require.ElementsMatch(t, []string{"abdec", "badec"}, suggested)
}

func TestResetRoundTrip(t *testing.T) {
	words := []string{"crane", "slate", "drape"}
	s := New(words, Options{})
	baseline := s.SuggestedWords()

	require.NoError(t, s.InputGuessResult("crane", "#####"))
	require.Len(t, s.Tries(), 1)

	s.Reset()
	require.Empty(t, s.Tries())
	require.Equal(t, baseline, s.SuggestedWords())
	require.Equal(t, words, s.PossibleWords())
}

func TestRemoveLastTry(t *testing.T) {
	words := []string{"crane", "slate", "drape"}
	s := New(words, Options{})

	require.NoError(t, s.InputGuessResult("slate", "_____"))
	require.Empty(t, s.PossibleWords(), "every word shares letters with slate")

	s.RemoveLastTry()
	require.Empty(t, s.Tries())
	require.Equal(t, words, s.PossibleWords())

	s.RemoveLastTry() // no-op on empty history
	require.Empty(t, s.Tries())
}

func TestMalformedInputRejectedBeforeMutation(t *testing.T) {
	words := []string{"crane", "slate"}
	s := New(words, Options{})
	require.NoError(t, s.InputGuessResult("crane", "_____"))
	before := s.PossibleWords()

	cases := []struct {
		name    string
		word    string
		symbols string
		kind    error
	}{
		{"short word", "cat", "___", ErrInvalidLength},
		{"long symbols", "slate", "______", ErrInvalidLength},
		{"uppercase letter", "slAte", "_____", ErrInvalidCharacter},
		{"digit in word", "sl4te", "_____", ErrInvalidCharacter},
		{"bad symbol", "slate", "__x__", ErrInvalidSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.InputGuessResult(tc.word, tc.symbols)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.kind), "got %v, want %v", err, tc.kind)
			require.Len(t, s.Tries(), 1, "history must be untouched")
			require.Equal(t, before, s.PossibleWords(), "state must be untouched")
		})
	}
}

func TestEffectiveListIntersection(t *testing.T) {
	words := []string{"moist", "pouty", "slate", "windy"}
	combos := map[string]map[string][]string{
		"crane": {"_____": {"moist", "pouty", "slate"}},
		"bcdfg": {"_____": {"pouty", "moist"}},
	}
	s := New(words, Options{EffectiveLists: combos})

	require.NoError(t, s.InputGuessResult("crane", "_____"))
	require.NoError(t, s.InputGuessResult("bcdfg", "_____"))

	// The search base narrows to the intersection of both matched subsets.
	require.Equal(t, []string{"moist", "pouty"}, s.PossibleWords())
}

func TestEffectiveListFallback(t *testing.T) {
	words := []string{"moist", "pouty"}
	combos := map[string]map[string][]string{
		"crane": {"?????": {"slate"}},
	}
	s := New(words, Options{EffectiveLists: combos})

	// Feedback differs from the combination entry, so nothing matches and
	// the full list stays in play.
	require.NoError(t, s.InputGuessResult("crane", "_____"))
	require.Equal(t, []string{"moist", "pouty"}, s.PossibleWords())
}

func TestGuessString(t *testing.T) {
	g := Guess{Word: "crane", Symbols: "_?#__"}
	require.Equal(t, "crane:_?#__", g.String())
	require.False(t, g.AllCorrect())
	require.True(t, Guess{Word: "crane", Symbols: "#####"}.AllCorrect())
}
