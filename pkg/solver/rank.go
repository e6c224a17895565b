package solver

import "sort"

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// letterProbability returns the relative frequency of each letter over the
// full alphabet, counting every occurrence in every word. Returns nil for an
// empty word list.
func letterProbability(words []string) map[byte]float64 {
	if len(words) == 0 {
		return nil
	}
	freqs := make(map[byte]int, len(alphabet))
	total := 0
	for _, word := range words {
		for i := 0; i < len(word); i++ {
			freqs[word[i]]++
		}
		total += len(word)
	}
	probs := make(map[byte]float64, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		letter := alphabet[i]
		probs[letter] = float64(freqs[letter]) / float64(total)
	}
	return probs
}

// positionalProbability returns one letter distribution per position,
// computed over the words at that position. Positions already fixed by the
// right-spot pattern get a nil distribution.
func (p *pattern) positionalProbability(words []string) []map[byte]float64 {
	positional := make([]map[byte]float64, p.length)
	column := make([]string, len(words))
	for i := 0; i < p.length; i++ {
		if p.rightSpot[i] != 0 {
			continue
		}
		for j, word := range words {
			column[j] = word[i : i+1]
		}
		positional[i] = letterProbability(column)
	}
	return positional
}

// scoreWord multiplies the positional probabilities of the word's letters
// over the unconstrained positions. Words whose letters are individually
// likely at their spot score highest; a letter missing from a distribution
// zeroes the score.
func scoreWord(word string, positional []map[byte]float64) float64 {
	score := 1.0
	for i := 0; i < len(positional) && i < len(word); i++ {
		if len(positional[i]) == 0 {
			continue
		}
		score *= positional[i][word[i]]
	}
	return score
}

// rankWords orders candidates for presentation. When a score table covers
// every candidate it wins; ties and the fallback use positional probability,
// highest first. Sorting is stable so equal scores keep list order.
func (s *Solver) rankWords(words []string) []string {
	ranked := make([]string, len(words))
	copy(ranked, words)

	if len(s.scores) > 0 && s.coversAll(words) {
		sort.SliceStable(ranked, func(i, j int) bool {
			if s.orderDesc {
				return s.scores[ranked[i]] > s.scores[ranked[j]]
			}
			return s.scores[ranked[i]] < s.scores[ranked[j]]
		})
		return ranked
	}

	positional := s.pat.positionalProbability(words)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreWord(ranked[i], positional) > scoreWord(ranked[j], positional)
	})
	return ranked
}

func (s *Solver) coversAll(words []string) bool {
	for _, word := range words {
		if _, ok := s.scores[word]; !ok {
			return false
		}
	}
	return true
}
