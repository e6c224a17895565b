/*
Package server implements msgpack IPC for the guess solver.

The protocol uses binary msgpack encoding over stdin/stdout on a request
response model: clients send structured messages via stdin and receive
responses through stdout. Each message carries an ID echoed back in the
response and an action selecting the operation.

Recording a guess and its feedback:

	{"id": "g_001", "action": "guess", "w": "crane", "fb": "_?#__"}

An all-correct feedback string ("#####") marks the round solved and resets
the session. Contradictory feedback is reported, not rejected:

	{"id": "g_002", "status": "conflict", "conflicts": [{"l": "a", "reason": "..."}]}

The client decides whether to follow up with "remove_last".

Fetching ranked suggestions returns the words of the first word source still
within its try budget, tagged with that source:

	{"id": "s_001", "action": "suggest", "l": 15}
	{"id": "s_001", "src": "english_words.txt", "s": [{"w": "slate", "r": 1}, ...], "c": 15, "t": 212}

Timing is reported in microseconds. Other actions: "tries" lists the
session history, "reset" starts a new round, "check" tests dictionary
membership of a word.

Validation failures come back as typed errors so clients can branch on the
kind instead of matching message strings:

	{"id": "g_003", "e": "symbols contain an invalid symbol: \"__x__\"", "k": "invalid_symbol", "c": 400}
*/
package server

// Request is the envelope for every incoming message. Action selects the
// operation; the remaining fields apply per action.
type Request struct {
	ID      string `msgpack:"id"`
	Action  string `msgpack:"action"`
	Word    string `msgpack:"w,omitempty"`
	Symbols string `msgpack:"fb,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
}

// SuggestionEntry - one ranked suggestion
type SuggestionEntry struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// SuggestResponse - ranked suggestions from one word source
type SuggestResponse struct {
	ID          string            `msgpack:"id"`
	Source      string            `msgpack:"src"`
	Suggestions []SuggestionEntry `msgpack:"s"`
	Count       int               `msgpack:"c"`
	TimeTaken   int64             `msgpack:"t"`
}

// ConflictEntry - one constraint contradiction
type ConflictEntry struct {
	Letter string `msgpack:"l"`
	Reason string `msgpack:"reason"`
}

// GuessResponse - result of recording a guess
type GuessResponse struct {
	ID        string          `msgpack:"id"`
	Status    string          `msgpack:"status"` // "ok", "solved" or "conflict"
	Conflicts []ConflictEntry `msgpack:"conflicts,omitempty"`
}

// TryEntry - one recorded try
type TryEntry struct {
	Word    string `msgpack:"w"`
	Symbols string `msgpack:"fb"`
}

// TriesResponse - the session try history
type TriesResponse struct {
	ID    string     `msgpack:"id"`
	Tries []TryEntry `msgpack:"tries"`
}

// CheckResponse - dictionary membership of a word
type CheckResponse struct {
	ID      string   `msgpack:"id"`
	Word    string   `msgpack:"w"`
	Known   bool     `msgpack:"known"`
	Sources []string `msgpack:"src,omitempty"`
}

// StatusResponse - plain acknowledgement
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds error information plus the error kind for branching
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Kind  string `msgpack:"k,omitempty"`
	Code  int    `msgpack:"c"`
}
