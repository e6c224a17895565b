package solver

import "errors"

// Validation errors returned before any solver state is touched.
// Callers branch on these with errors.Is.
var (
	// ErrInvalidLength means a guess word or its feedback symbols do not
	// match the configured word length.
	ErrInvalidLength = errors.New("word or symbol length is invalid")

	// ErrInvalidCharacter means a guess contains something other than a-z.
	ErrInvalidCharacter = errors.New("word contains an invalid character")

	// ErrInvalidSymbol means feedback contains a symbol outside "#?_".
	ErrInvalidSymbol = errors.New("symbols contain an invalid symbol")

	// ErrNoSolvers means an operation needing at least one word source was
	// invoked on a coordinator with none configured.
	ErrNoSolvers = errors.New("no solvers configured")
)
