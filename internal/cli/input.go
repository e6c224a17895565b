// Package cli implements the interactive prompt loop for entering guess
// feedback and reading ranked suggestions.
package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/bastiangx/wordsleuth/pkg/dictionary"
	"github.com/bastiangx/wordsleuth/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	sourceStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// InputHandler runs the prompt loop against a multi-list solver. Entries of
// the form "word:symbols" feed the solver; a handful of !commands manage the
// round. Dictionaries are only consulted to warn about unknown guess words.
type InputHandler struct {
	multi        *solver.MultiSolver
	dicts        []*dictionary.Dictionary
	suggestLimit int
}

// NewInputHandler creates a prompt handler. dicts may be nil; the unknown
// word warning is skipped then.
func NewInputHandler(multi *solver.MultiSolver, dicts []*dictionary.Dictionary, suggestLimit int) *InputHandler {
	return &InputHandler{
		multi:        multi,
		dicts:        dicts,
		suggestLimit: suggestLimit,
	}
}

// Start begins the prompt loop. It returns only on a stdin read error;
// normal termination is the interrupt signal.
func (h *InputHandler) Start() error {
	printHelp()
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("Please enter your last try as word:symbols")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input := strings.ToLower(strings.TrimSpace(line))
		if input == "" {
			continue
		}
		if h.handleInput(input) {
			h.showSuggestions()
		}
	}
}

// handleInput processes one line and reports whether suggestions should be
// shown afterwards.
func (h *InputHandler) handleInput(input string) bool {
	if strings.Contains(input, ":") {
		return h.handleEntry(input)
	}

	switch input {
	case "!done":
		h.multi.Reset()
		log.Print("The state is reset")
	case "!remove_last":
		h.multi.RemoveLastTry()
		log.Print("Your last try has been removed")
	case "!tries":
		tries := h.multi.Tries()
		if len(tries) == 0 {
			log.Print("No tries entered")
			return false
		}
		for i, t := range tries {
			log.Printf("\tTry %d: %s", i, t)
		}
	default:
		log.Warn("Invalid input")
	}
	return false
}

// handleEntry parses a "word:symbols" line, records the guess and rolls it
// back automatically when it contradicts earlier feedback.
func (h *InputHandler) handleEntry(input string) bool {
	word, symbols, ok := parseEntry(input, h.multi.WordLength())
	if !ok {
		log.Warn("Invalid format: expected word:symbols with matching lengths")
		return false
	}

	if symbols == strings.Repeat(string(solver.SymbolCorrect), h.multi.WordLength()) {
		log.Print("Great!")
		h.multi.Reset()
		log.Print("The state is reset")
		return false
	}

	if len(h.dicts) > 0 && !h.anyDictContains(word) {
		log.Warnf("'%s' is not in any loaded word list", word)
	}

	if err := h.multi.InputGuessResult(word, symbols); err != nil {
		switch {
		case errors.Is(err, solver.ErrInvalidCharacter):
			log.Warn("Invalid format: word must be lowercase letters only")
		case errors.Is(err, solver.ErrInvalidSymbol):
			log.Warnf("Invalid format: symbols must use '%s'", solver.Symbols)
		default:
			log.Warnf("Invalid input: %v", err)
		}
		return false
	}

	conflicts, err := h.multi.Conflicts()
	if err != nil {
		log.Errorf("Conflict check failed: %v", err)
		return false
	}
	if len(conflicts) > 0 {
		for _, c := range conflicts {
			log.Printf("%c: %s", c.Letter, c.Reason)
		}
		h.multi.RemoveLastTry()
		log.Print("Your last try has been removed")
		return false
	}
	return true
}

// parseEntry splits a "word:symbols" line and checks both halves against
// the configured length. Deeper validation is the solver's job.
func parseEntry(input string, wordLength int) (word, symbols string, ok bool) {
	word, symbols, found := strings.Cut(input, ":")
	if !found || len(word) != wordLength || len(symbols) != wordLength {
		return "", "", false
	}
	return word, symbols, true
}

func (h *InputHandler) anyDictContains(word string) bool {
	for _, d := range h.dicts {
		if d.Contains(word) {
			return true
		}
	}
	return false
}

func (h *InputHandler) showSuggestions() {
	result := h.multi.SuggestedWords()
	if len(result.Words) == 0 {
		log.Print("No other possible words. Please check the result symbols you entered.")
		return
	}

	log.Printf("Suggested words (from list %s):", sourceStyle.Render("'"+result.Source+"'"))
	words := result.Words
	if h.suggestLimit > 0 && len(words) > h.suggestLimit {
		words = words[:h.suggestLimit]
	}
	for _, word := range words {
		log.Printf("\t%s", wordStyle.Render(word))
	}
}

func printHelp() {
	log.Print("Meanings of symbols:")
	log.Print(" #\tletter in the word and in the right spot (green box)")
	log.Print(" ?\tletter in the word but in a wrong spot (orange box)")
	log.Print(" _\tletter not in the word (grey box)")
	log.Print("")
	log.Print("Commands you could use:")
	log.Print(" !done\t\tyou're done guessing a hidden word; resets the solver for a new word")
	log.Print(" !tries\t\tsee the tries entered")
	log.Print(" !remove_last\tremove the last try entered")
	log.Print("")
}
