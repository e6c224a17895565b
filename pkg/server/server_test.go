package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/wordsleuth/pkg/solver"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func newTestServer(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	multi := solver.NewMulti([]solver.Source{
		{ID: "one.txt", Words: []string{"abcde"}},
		{ID: "two.txt", Words: []string{"fghij"}},
	}, solver.Options{}, nil)

	var out bytes.Buffer
	srv := NewServerWithIO(multi, nil, &in, &out)
	require.NoError(t, srv.Start(), "server must exit cleanly on EOF")

	return msgpack.NewDecoder(&out)
}

func requireReady(t *testing.T, dec *msgpack.Decoder) {
	t.Helper()
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
}

func TestServerGuessAndSuggest(t *testing.T) {
	dec := newTestServer(t,
		Request{ID: "g1", Action: "guess", Word: "apqrs", Symbols: "_____"},
		Request{ID: "s1", Action: "suggest"},
	)
	requireReady(t, dec)

	var guess GuessResponse
	require.NoError(t, dec.Decode(&guess))
	require.Equal(t, "g1", guess.ID)
	require.Equal(t, "ok", guess.Status)
	require.Empty(t, guess.Conflicts)

	// "apqrs" eliminated source one, so suggestions come from source two.
	var suggest SuggestResponse
	require.NoError(t, dec.Decode(&suggest))
	require.Equal(t, "s1", suggest.ID)
	require.Equal(t, "two.txt", suggest.Source)
	require.Equal(t, 1, suggest.Count)
	require.Equal(t, "fghij", suggest.Suggestions[0].Word)
	require.Equal(t, uint16(1), suggest.Suggestions[0].Rank)
}

func TestServerSuggestLimit(t *testing.T) {
	dec := newTestServer(t, Request{ID: "s1", Action: "suggest", Limit: 1})
	requireReady(t, dec)

	var suggest SuggestResponse
	require.NoError(t, dec.Decode(&suggest))
	require.Equal(t, 1, suggest.Count)
	require.Len(t, suggest.Suggestions, 1)
}

func TestServerValidationError(t *testing.T) {
	dec := newTestServer(t,
		Request{ID: "g1", Action: "guess", Word: "abcde", Symbols: "__x__"},
	)
	requireReady(t, dec)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	require.Equal(t, "g1", errResp.ID)
	require.Equal(t, "invalid_symbol", errResp.Kind)
	require.Equal(t, 400, errResp.Code)
}

func TestServerSolvedResetsRound(t *testing.T) {
	dec := newTestServer(t,
		Request{ID: "g1", Action: "guess", Word: "apqrs", Symbols: "_____"},
		Request{ID: "g2", Action: "guess", Word: "fghij", Symbols: "#####"},
		Request{ID: "t1", Action: "tries"},
	)
	requireReady(t, dec)

	var first GuessResponse
	require.NoError(t, dec.Decode(&first))
	require.Equal(t, "ok", first.Status)

	var solved GuessResponse
	require.NoError(t, dec.Decode(&solved))
	require.Equal(t, "solved", solved.Status)

	var tries TriesResponse
	require.NoError(t, dec.Decode(&tries))
	require.Empty(t, tries.Tries, "solved round must reset the history")
}

func TestServerTriesAndRemoveLast(t *testing.T) {
	dec := newTestServer(t,
		Request{ID: "g1", Action: "guess", Word: "apqrs", Symbols: "_____"},
		Request{ID: "t1", Action: "tries"},
		Request{ID: "r1", Action: "remove_last"},
		Request{ID: "t2", Action: "tries"},
	)
	requireReady(t, dec)

	var guess GuessResponse
	require.NoError(t, dec.Decode(&guess))

	var tries TriesResponse
	require.NoError(t, dec.Decode(&tries))
	require.Equal(t, []TryEntry{{Word: "apqrs", Symbols: "_____"}}, tries.Tries)

	var removed StatusResponse
	require.NoError(t, dec.Decode(&removed))
	require.Equal(t, "removed", removed.Status)

	var after TriesResponse
	require.NoError(t, dec.Decode(&after))
	require.Empty(t, after.Tries)
}

func TestServerUnknownAction(t *testing.T) {
	dec := newTestServer(t, Request{ID: "x1", Action: "bogus"})
	requireReady(t, dec)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	require.Equal(t, 400, errResp.Code)
}
