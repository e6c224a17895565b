package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoSources() []Source {
	return []Source{
		{ID: "curated.txt", Words: []string{"abcde"}},
		{ID: "full.txt", Words: []string{"fghij"}},
	}
}

func TestMultiCutover(t *testing.T) {
	m := NewMulti(twoSources(), Options{}, []int{1, 0})

	first := m.SuggestedWords()
	require.Equal(t, "curated.txt", first.Source)
	require.NotEmpty(t, first.Words)

	// A guess that eliminates neither source's word.
	require.NoError(t, m.InputGuessResult("klmno", "_____"))

	// Source one still has candidates but is past its try budget.
	second := m.SuggestedWords()
	require.Equal(t, "full.txt", second.Source)
	require.Equal(t, []string{"fghij"}, second.Words)
}

func TestMultiShortThresholdListDisablesCutover(t *testing.T) {
	m := NewMulti(twoSources(), Options{}, []int{1})

	require.NoError(t, m.InputGuessResult("klmno", "_____"))
	result := m.SuggestedWords()
	require.Equal(t, "curated.txt", result.Source,
		"fewer thresholds than sources must disable cutover")
}

func TestMultiFallsThroughEmptySources(t *testing.T) {
	m := NewMulti(twoSources(), Options{}, nil)

	// Eliminates "abcde" but not "fghij".
	require.NoError(t, m.InputGuessResult("apqrs", "_____"))
	result := m.SuggestedWords()
	require.Equal(t, "full.txt", result.Source)
	require.Equal(t, []string{"fghij"}, result.Words)
}

func TestMultiExhaustedTaggedWithLastSource(t *testing.T) {
	m := NewMulti(twoSources(), Options{}, nil)

	// 'a' and 'f' kill both lists.
	require.NoError(t, m.InputGuessResult("afpqr", "_____"))
	result := m.SuggestedWords()
	require.Empty(t, result.Words)
	require.Equal(t, "full.txt", result.Source)
}

func TestMultiBroadcastAndRollback(t *testing.T) {
	m := NewMulti(twoSources(), Options{}, nil)

	require.NoError(t, m.InputGuessResult("afpqr", "_____"))
	require.Equal(t, 1, m.TryCount())
	conflicts, err := m.Conflicts()
	require.NoError(t, err)
	require.Empty(t, conflicts)

	m.RemoveLastTry()
	require.Zero(t, m.TryCount())
	require.Equal(t, "curated.txt", m.SuggestedWords().Source)

	require.NoError(t, m.InputGuessResult("afpqr", "_____"))
	m.Reset()
	require.Zero(t, m.TryCount())
	require.Equal(t, "curated.txt", m.SuggestedWords().Source)
}

func TestMultiExcludedWordsBroadcast(t *testing.T) {
	m := NewMulti(twoSources(), Options{}, nil)
	m.SetExcludedWords([]string{"abcde"})

	result := m.SuggestedWords()
	require.Equal(t, "full.txt", result.Source)
	require.Equal(t, []string{"fghij"}, result.Words)
}

func TestMultiValidationLeavesStateUntouched(t *testing.T) {
	m := NewMulti(twoSources(), Options{}, nil)

	err := m.InputGuessResult("abc", "___")
	require.ErrorIs(t, err, ErrInvalidLength)
	require.Zero(t, m.TryCount())

	require.Empty(t, m.Tries())
	for _, sv := range m.solvers {
		require.Empty(t, sv.Tries())
	}
}

func TestMultiNoSolvers(t *testing.T) {
	m := NewMulti(nil, Options{}, nil)

	_, err := m.Conflicts()
	require.ErrorIs(t, err, ErrNoSolvers)

	result := m.SuggestedWords()
	require.Empty(t, result.Words)
	require.Empty(t, result.Source)
}
