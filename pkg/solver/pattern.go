package solver

import "github.com/bastiangx/wordsleuth/internal/utils"

// Conflict flags a contradiction between accumulated constraints,
// usually caused by a mistyped feedback entry.
type Conflict struct {
	Letter byte
	Reason string
}

// pattern holds every constraint derived from the try history.
// It is recomputed from scratch after each change to the history,
// never patched in place.
type pattern struct {
	length    int
	included  map[byte]bool   // letters confirmed somewhere in the word
	excluded  map[byte]bool   // letters confirmed absent everywhere
	rightSpot []byte          // confirmed letter per position, 0 = unconstrained
	wrongSpot []map[byte]bool // letters banned per position
	maxOccur  map[byte]int    // per-letter occurrence caps
}

func newPattern(length int) pattern {
	wrongSpot := make([]map[byte]bool, length)
	for i := range wrongSpot {
		wrongSpot[i] = make(map[byte]bool)
	}
	return pattern{
		length:    length,
		included:  make(map[byte]bool),
		excluded:  make(map[byte]bool),
		rightSpot: make([]byte, length),
		wrongSpot: wrongSpot,
		maxOccur:  make(map[byte]int),
	}
}

// derivePattern accumulates constraints from the tries in order, one symbol
// at a time. An Absent symbol on a letter already known included does not
// exclude it globally: it caps how many times the letter may occur, based on
// how often it appears elsewhere in the same guess.
func derivePattern(tries []Guess, length int) pattern {
	p := newPattern(length)
	for _, t := range tries {
		for i := 0; i < length; i++ {
			letter := t.Word[i]
			switch t.Symbols[i] {
			case SymbolCorrect:
				p.included[letter] = true
				p.rightSpot[i] = letter
			case SymbolPresent:
				p.included[letter] = true
				p.wrongSpot[i][letter] = true
			case SymbolAbsent:
				if p.included[letter] {
					if _, ok := p.maxOccur[letter]; !ok {
						p.maxOccur[letter] = utils.CountLetter(t.Word, letter) - 1
					}
				} else {
					p.excluded[letter] = true
				}
			}
		}
	}
	// Inclusion may be established by a later try than the exclusion,
	// so the global set is settled only after the full pass.
	for letter := range p.included {
		delete(p.excluded, letter)
	}
	return p
}

// conflicts reports contradictions in the accumulated state. The caller
// decides whether to roll back the most recent try; nothing is repaired here.
func (p *pattern) conflicts(highProb map[byte]bool) []Conflict {
	var found []Conflict
	for letter := byte('a'); letter <= 'z'; letter++ {
		if !p.excluded[letter] {
			continue
		}
		if p.included[letter] || highProb[letter] {
			found = append(found, Conflict{letter, "excluded letter found in inclusion list"})
		}
		for i := 0; i < p.length; i++ {
			if p.rightSpot[i] == letter {
				found = append(found, Conflict{letter, "excluded letter found in right spot pattern"})
				break
			}
		}
	}
	for i := 0; i < p.length; i++ {
		if p.rightSpot[i] != 0 && p.wrongSpot[i][p.rightSpot[i]] {
			found = append(found, Conflict{p.rightSpot[i], "letter in right spot found in wrong spot pattern"})
		}
	}
	return found
}

// fixedPositions counts the slots with a confirmed letter.
func (p *pattern) fixedPositions() int {
	n := 0
	for _, letter := range p.rightSpot {
		if letter != 0 {
			n++
		}
	}
	return n
}
