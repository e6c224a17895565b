package utils

// IsLowerAlpha reports whether a string consists entirely of ASCII a-z.
// Guesses and dictionary words are rejected on anything else.
func IsLowerAlpha(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// CountLetter returns how many times a letter occurs in a word.
func CountLetter(word string, letter byte) int {
	count := 0
	for i := 0; i < len(word); i++ {
		if word[i] == letter {
			count++
		}
	}
	return count
}
