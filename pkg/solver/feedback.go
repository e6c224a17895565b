package solver

import (
	"fmt"
	"strings"

	"github.com/bastiangx/wordsleuth/internal/utils"
)

// Feedback symbols, one per guessed letter.
const (
	SymbolCorrect byte = '#' // right letter, right spot (green box)
	SymbolPresent byte = '?' // right letter, wrong spot (orange box)
	SymbolAbsent  byte = '_' // letter not in the word (grey box)
)

// Symbols is the permitted feedback alphabet.
const Symbols = "#?_"

// Guess pairs a tried word with the per-letter feedback the puzzle returned.
type Guess struct {
	Word    string
	Symbols string
}

// AllCorrect reports whether every letter came back correct,
// meaning the hidden word was found.
func (g Guess) AllCorrect() bool {
	for i := 0; i < len(g.Symbols); i++ {
		if g.Symbols[i] != SymbolCorrect {
			return false
		}
	}
	return len(g.Symbols) > 0
}

func (g Guess) String() string {
	return fmt.Sprintf("%s:%s", g.Word, g.Symbols)
}

// validateGuess rejects malformed input before any state mutation.
func validateGuess(word, symbols string, length int) error {
	if len(word) != length || len(symbols) != length {
		return fmt.Errorf("%w: got word %q, symbols %q, want length %d",
			ErrInvalidLength, word, symbols, length)
	}
	if !utils.IsLowerAlpha(word) {
		return fmt.Errorf("%w: %q", ErrInvalidCharacter, word)
	}
	for i := 0; i < len(symbols); i++ {
		if strings.IndexByte(Symbols, symbols[i]) < 0 {
			return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbols)
		}
	}
	return nil
}
