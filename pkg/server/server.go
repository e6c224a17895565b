package server

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordsleuth/pkg/dictionary"
	"github.com/bastiangx/wordsleuth/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for solver sessions. One session per process.
type Server struct {
	multi *solver.MultiSolver
	dicts []*dictionary.Dictionary
	dec   *msgpack.Decoder
	enc   *msgpack.Encoder
}

// NewServer creates a solver server using stdin/stdout for IPC.
func NewServer(multi *solver.MultiSolver, dicts []*dictionary.Dictionary) *Server {
	return NewServerWithIO(multi, dicts, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams, mainly for tests.
func NewServerWithIO(multi *solver.MultiSolver, dicts []*dictionary.Dictionary, r io.Reader, w io.Writer) *Server {
	return &Server{
		multi: multi,
		dicts: dicts,
		dec:   msgpack.NewDecoder(r),
		enc:   msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on client EOF.
func (s *Server) Start() error {
	log.Debug("Starting solver IPC server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "guess":
		s.handleGuess(req)
	case "suggest":
		s.handleSuggest(req)
	case "tries":
		s.handleTries(req)
	case "remove_last":
		s.multi.RemoveLastTry()
		s.send(StatusResponse{ID: req.ID, Status: "removed"})
	case "reset":
		s.multi.Reset()
		s.send(StatusResponse{ID: req.ID, Status: "reset"})
	case "check":
		s.handleCheck(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, "unknown action: "+req.Action, "", 400)
	}
}

// handleGuess records a guess. Contradictory feedback is reported with
// status "conflict" and left in place; rolling back is the client's call.
func (s *Server) handleGuess(req Request) {
	if req.Symbols == strings.Repeat(string(solver.SymbolCorrect), s.multi.WordLength()) {
		s.multi.Reset()
		s.send(GuessResponse{ID: req.ID, Status: "solved"})
		return
	}

	if err := s.multi.InputGuessResult(req.Word, req.Symbols); err != nil {
		s.sendError(req.ID, err.Error(), errKind(err), 400)
		return
	}

	conflicts, err := s.multi.Conflicts()
	if err != nil {
		s.sendError(req.ID, err.Error(), errKind(err), 500)
		return
	}
	if len(conflicts) > 0 {
		entries := make([]ConflictEntry, len(conflicts))
		for i, c := range conflicts {
			entries[i] = ConflictEntry{Letter: string(c.Letter), Reason: c.Reason}
		}
		s.send(GuessResponse{ID: req.ID, Status: "conflict", Conflicts: entries})
		return
	}
	s.send(GuessResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) handleSuggest(req Request) {
	start := time.Now()
	result := s.multi.SuggestedWords()
	elapsed := time.Since(start)

	words := result.Words
	if req.Limit > 0 && len(words) > req.Limit {
		words = words[:req.Limit]
	}
	suggestions := make([]SuggestionEntry, len(words))
	for i, word := range words {
		suggestions[i] = SuggestionEntry{Word: word, Rank: uint16(i + 1)}
	}

	log.Debugf("Took [ %v ] for %d suggestions from '%s'", elapsed, len(suggestions), result.Source)
	s.send(SuggestResponse{
		ID:          req.ID,
		Source:      result.Source,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleTries(req Request) {
	tries := s.multi.Tries()
	entries := make([]TryEntry, len(tries))
	for i, t := range tries {
		entries[i] = TryEntry{Word: t.Word, Symbols: t.Symbols}
	}
	s.send(TriesResponse{ID: req.ID, Tries: entries})
}

func (s *Server) handleCheck(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'w' parameter", "", 400)
		return
	}
	resp := CheckResponse{ID: req.ID, Word: req.Word}
	for _, d := range s.dicts {
		if d.Contains(req.Word) {
			resp.Known = true
			resp.Sources = append(resp.Sources, d.Path)
		}
	}
	s.send(resp)
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message, kind string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Kind: kind, Code: code})
}

// errKind maps solver sentinel errors to wire identifiers.
func errKind(err error) string {
	switch {
	case errors.Is(err, solver.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, solver.ErrInvalidCharacter):
		return "invalid_character"
	case errors.Is(err, solver.ErrInvalidSymbol):
		return "invalid_symbol"
	case errors.Is(err, solver.ErrNoSolvers):
		return "no_solvers"
	default:
		return ""
	}
}
