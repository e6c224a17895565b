package solver

// Source binds a word list to an identifier, usually the file it was
// loaded from. The identifier tags suggestion results so the caller knows
// which list a suggestion came from.
type Source struct {
	ID    string
	Words []string
}

// SuggestedResult is a ranked suggestion list tagged with its source.
// An empty Words with a non-empty Source means every source was exhausted.
type SuggestedResult struct {
	Words  []string
	Source string
}

// MultiSolver coordinates independent solvers over several word lists.
// Guesses, exclusions and resets are broadcast to every solver so each keeps
// a consistent view; suggestions come from the first source that is both
// within its try budget and has candidates left.
type MultiSolver struct {
	wordLength int
	ids        []string
	solvers    []*Solver
	maxTries   []int
	tries      []Guess
}

// NewMulti creates a coordinator with one solver per source. Every solver
// gets its own configuration derived from opts; maxTries holds one cutover
// threshold per source: once the session's try count reaches a source's
// threshold that source is skipped. A threshold of 0 or less means unbounded.
//
// Cutover only applies when at least as many thresholds as sources are
// configured; a shorter list disables it, matching the reference behavior.
func NewMulti(sources []Source, opts Options, maxTries []int) *MultiSolver {
	length := opts.WordLength
	if length <= 0 {
		length = DefaultWordLength
	}
	m := &MultiSolver{
		wordLength: length,
		maxTries:   append([]int(nil), maxTries...),
	}
	for _, src := range sources {
		m.ids = append(m.ids, src.ID)
		m.solvers = append(m.solvers, New(src.Words, opts))
	}
	return m
}

// TryCount returns the number of tries recorded this round.
func (m *MultiSolver) TryCount() int {
	return len(m.tries)
}

// Tries returns a copy of the shared try history, oldest first.
func (m *MultiSolver) Tries() []Guess {
	out := make([]Guess, len(m.tries))
	copy(out, m.tries)
	return out
}

// WordLength returns the configured fixed word length.
func (m *MultiSolver) WordLength() int {
	return m.wordLength
}

// InputGuessResult validates the guess once, then broadcasts it to every
// solver and appends it to the shared history. On a validation error nothing
// changes anywhere.
func (m *MultiSolver) InputGuessResult(word, symbols string) error {
	if err := validateGuess(word, symbols, m.wordLength); err != nil {
		return err
	}
	for _, sv := range m.solvers {
		// Cannot fail: validated above against the same length.
		_ = sv.InputGuessResult(word, symbols)
	}
	m.tries = append(m.tries, Guess{Word: word, Symbols: symbols})
	return nil
}

// RemoveLastTry pops the shared history and re-derives every solver's state.
func (m *MultiSolver) RemoveLastTry() {
	if len(m.tries) == 0 {
		return
	}
	m.tries = m.tries[:len(m.tries)-1]
	for _, sv := range m.solvers {
		sv.RemoveLastTry()
	}
}

// Reset starts a new round in every solver and clears the shared history.
func (m *MultiSolver) Reset() {
	m.tries = nil
	for _, sv := range m.solvers {
		sv.Reset()
	}
}

// SetExcludedWords broadcasts the exclusion set to every solver.
func (m *MultiSolver) SetExcludedWords(words []string) {
	for _, sv := range m.solvers {
		sv.SetExcludedWords(words)
	}
}

// Conflicts reports constraint contradictions. All solvers see the same
// tries, so the first solver's view is authoritative.
func (m *MultiSolver) Conflicts() ([]Conflict, error) {
	if len(m.solvers) == 0 {
		return nil, ErrNoSolvers
	}
	return m.solvers[0].Conflicts(), nil
}

// SuggestedWords walks the sources in configured order, skipping those past
// their cutover threshold, and returns the first non-empty ranked list.
// When every source is skipped or empty, the result carries no words and is
// tagged with the last configured source.
func (m *MultiSolver) SuggestedWords() SuggestedResult {
	for i, sv := range m.solvers {
		if len(m.maxTries) >= len(m.solvers) && i < len(m.maxTries) {
			if limit := m.maxTries[i]; limit > 0 && len(m.tries) >= limit {
				continue
			}
		}
		if words := sv.SuggestedWords(); len(words) > 0 {
			return SuggestedResult{Words: words, Source: m.ids[i]}
		}
	}
	var last string
	if len(m.ids) > 0 {
		last = m.ids[len(m.ids)-1]
	}
	return SuggestedResult{Source: last}
}
