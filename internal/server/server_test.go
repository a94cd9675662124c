package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/errors"
	"github.com/lgbarn/console-chess-go/internal/testutil"
)

func newTestServer(t *testing.T, maxGames int) *Server {
	t.Helper()
	cfg := config.NewConfigBuilder().
		WithLog(io.Discard).
		WithVerbosity(0).
		WithMaxGames(maxGames).
		Build()
	return New(cfg)
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("%s %s: reading body: %v", method, path, err)
	}
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("json.Unmarshal(%s) error: %v", data, err)
	}
	return v
}

func createGame(t *testing.T, app *fiber.App, body string) GameState {
	t.Helper()
	resp, data := do(t, app, http.MethodPost, "/api/games", body)
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusCreated)
	return decode[GameState](t, data)
}

func TestCreateAndGetGame(t *testing.T) {
	srv := newTestServer(t, 0)
	app := srv.App()

	created := createGame(t, app, "")
	testutil.AssertTrue(t, created.ID != "", "created game has an id")
	testutil.AssertEqual(t, created.State.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, len(created.History), 0)

	resp, data := do(t, app, http.MethodGet, "/api/games/"+created.ID, "")
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusOK)
	got := decode[GameState](t, data)
	testutil.AssertEqual(t, got.ID, created.ID)
	testutil.AssertEqual(t, got.State.ToMove, "White")
}

func TestCreateGameFromFEN(t *testing.T) {
	app := newTestServer(t, 0).App()
	fen := "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"

	created := createGame(t, app, `{"fen":"`+fen+`"}`)
	testutil.AssertEqual(t, created.State.FEN, fen)

	resp, data := do(t, app, http.MethodPost, "/api/games", `{"fen":"8/8 w"}`)
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusBadRequest)
	testutil.AssertContains(t, decode[ErrorBody](t, data).Error, "invalid FEN")
}

func TestListGamesSorted(t *testing.T) {
	srv := newTestServer(t, 0)
	app := srv.App()
	for i := 0; i < 3; i++ {
		createGame(t, app, "")
	}

	resp, data := do(t, app, http.MethodGet, "/api/games", "")
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusOK)
	got := decode[struct {
		Games []string `json:"games"`
	}](t, data)
	testutil.AssertEqual(t, len(got.Games), 3)
	testutil.AssertEqual(t, got.Games, srv.Games().IDs())
	for i := 1; i < len(got.Games); i++ {
		if got.Games[i-1] > got.Games[i] {
			t.Errorf("games not sorted: %v", got.Games)
		}
	}
}

func TestGameLimit(t *testing.T) {
	app := newTestServer(t, 1).App()
	createGame(t, app, "")

	resp, data := do(t, app, http.MethodPost, "/api/games", "")
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusServiceUnavailable)
	testutil.AssertEqual(t, decode[ErrorBody](t, data).Error, "too many games")
}

func TestPlayMove(t *testing.T) {
	app := newTestServer(t, 0).App()
	game := createGame(t, app, "")
	path := "/api/games/" + game.ID + "/moves"

	resp, data := do(t, app, http.MethodPost, path, `{"move":"e2 e4"}`)
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusOK)
	state := decode[GameState](t, data)
	testutil.AssertEqual(t, state.History, []string{"e2 e4"})
	testutil.AssertEqual(t, state.State.ToMove, "Black")
	testutil.AssertEqual(t, state.State.LastMove, "e2 e4")
	testutil.AssertEqual(t, state.State.EnPassant, "e4")
}

func TestPlayMoveRejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		wantErr  string
		wantCode string
	}{
		{"bad square", `{"move":"e9 e4"}`, fiber.StatusUnprocessableEntity, "invalid location format", "InvalidLocation"},
		{"one square", `{"move":"e2"}`, fiber.StatusUnprocessableEntity, "invalid input", "InvalidInputShape"},
		{"wrong owner", `{"move":"e7 e5"}`, fiber.StatusUnprocessableEntity, "belongs to you", "WrongOwnerSource"},
		{"own piece", `{"move":"a1 a2"}`, fiber.StatusUnprocessableEntity, "your own piece", "OwnPieceDestination"},
		{"unlawful", `{"move":"e2 e5"}`, fiber.StatusUnprocessableEntity, "unlawful move", "IllegalMove"},
		{"bad promotion", `{"move":"e2 e4","promotion":"k"}`, fiber.StatusBadRequest, "invalid promotion", ""},
		{"bad json", `{"move":`, fiber.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestServer(t, 0).App()
			game := createGame(t, app, "")

			resp, data := do(t, app, http.MethodPost, "/api/games/"+game.ID+"/moves", tt.body)
			testutil.AssertEqual(t, resp.StatusCode, tt.status)
			body := decode[ErrorBody](t, data)
			testutil.AssertContains(t, body.Error, tt.wantErr)
			testutil.AssertEqual(t, body.Code, tt.wantCode)
		})
	}
}

func TestPlayPromotion(t *testing.T) {
	app := newTestServer(t, 0).App()
	game := createGame(t, app, `{"fen":"4k3/P7/8/8/8/8/8/4K3 w - - 0 1"}`)
	path := "/api/games/" + game.ID + "/moves"

	resp, data := do(t, app, http.MethodPost, path, `{"move":"a7 a8"}`)
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusBadRequest)
	testutil.AssertContains(t, decode[ErrorBody](t, data).Error, "promotion piece required")

	resp, data = do(t, app, http.MethodPost, path, `{"move":"a7 a8","promotion":"N"}`)
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusOK)
	state := decode[GameState](t, data)
	testutil.AssertEqual(t, state.History, []string{"a7 a8 n"})
	testutil.AssertEqual(t, state.State.Board[0], "N   k   ")
}

func TestPlayAfterKingCapture(t *testing.T) {
	app := newTestServer(t, 0).App()
	game := createGame(t, app, `{"fen":"8/8/8/8/8/8/4k3/4K3 w - - 0 1"}`)
	path := "/api/games/" + game.ID + "/moves"

	resp, data := do(t, app, http.MethodPost, path, `{"move":"e1 e2"}`)
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusOK)
	state := decode[GameState](t, data)
	testutil.AssertTrue(t, state.State.Over, "game over after king capture")
	testutil.AssertEqual(t, state.State.Winner, "White")

	resp, _ = do(t, app, http.MethodPost, path, `{"move":"e2 e3"}`)
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusConflict)
}

func TestUnknownGame(t *testing.T) {
	app := newTestServer(t, 0).App()
	for _, path := range []string{"/api/games/nope", "/api/games/nope/board.svg", "/api/games/nope/board.txt"} {
		resp, data := do(t, app, http.MethodGet, path, "")
		testutil.AssertEqual(t, resp.StatusCode, fiber.StatusNotFound, path)
		testutil.AssertContains(t, decode[ErrorBody](t, data).Error, "game not found", path)
	}
	resp, _ := do(t, app, http.MethodPost, "/api/games/nope/moves", `{"move":"e2 e4"}`)
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusNotFound)
}

func TestDeleteGame(t *testing.T) {
	srv := newTestServer(t, 0)
	app := srv.App()
	game := createGame(t, app, "")

	resp, _ := do(t, app, http.MethodDelete, "/api/games/"+game.ID, "")
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusNoContent)
	testutil.AssertEqual(t, srv.Games().Len(), 0)

	resp, _ = do(t, app, http.MethodDelete, "/api/games/"+game.ID, "")
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusNotFound)
}

func TestBoardRenderings(t *testing.T) {
	app := newTestServer(t, 0).App()
	game := createGame(t, app, "")

	resp, data := do(t, app, http.MethodGet, "/api/games/"+game.ID+"/board.svg", "")
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusOK)
	testutil.AssertEqual(t, resp.Header.Get("Content-Type"), "image/svg+xml")
	testutil.AssertContains(t, string(data), "<svg")

	resp, data = do(t, app, http.MethodGet, "/api/games/"+game.ID+"/board.txt", "")
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusOK)
	testutil.AssertContains(t, string(data), "8| r | n | b | q | k | b | n | r |8")
}

func TestWebSocketRequiresUpgrade(t *testing.T) {
	app := newTestServer(t, 0).App()
	game := createGame(t, app, "")

	resp, _ := do(t, app, http.MethodGet, "/ws/games/"+game.ID, "")
	testutil.AssertEqual(t, resp.StatusCode, fiber.StatusUpgradeRequired)
}

// recorder is a Subscriber that keeps every message.
type recorder struct {
	mu   sync.Mutex
	msgs []Message
	fail bool
}

func (r *recorder) WriteJSON(v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return stderrors.New("closed")
	}
	r.msgs = append(r.msgs, v.(Message))
	return nil
}

func TestSessionBroadcast(t *testing.T) {
	m := NewManager(0)
	game, err := m.Create(engine.NewPosition())
	testutil.AssertNoError(t, err)

	live, dead := &recorder{}, &recorder{fail: true}
	game.Subscribe(live)
	game.Subscribe(dead)
	testutil.AssertEqual(t, game.Subscribers(), 2)

	_, err = game.Play("e2 e4", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, game.Subscribers(), 1)
	testutil.AssertEqual(t, len(live.msgs), 1)
	testutil.AssertEqual(t, live.msgs[0].Type, MessageTypeState)
	state := live.msgs[0].Payload.(*GameState)
	testutil.AssertEqual(t, state.History, []string{"e2 e4"})

	_, err = game.Play("e2 e4", "")
	testutil.AssertErrorIs(t, err, errors.ErrWrongOwner)
	testutil.AssertEqual(t, len(live.msgs), 1)

	game.Unsubscribe(live)
	testutil.AssertEqual(t, game.Subscribers(), 0)
}

func TestHandleMessage(t *testing.T) {
	srv := newTestServer(t, 0)
	game, err := srv.Games().Create(engine.NewPosition())
	testutil.AssertNoError(t, err)

	err = srv.handleMessage(game, inbound{Type: MessageTypeMove, Payload: json.RawMessage(`{"move":"g1 f3"}`)})
	testutil.AssertNoError(t, err)
	p := game.Position()
	testutil.AssertEqual(t, p.Get(chess.MustParseSquare("f3")), chess.WKnight)

	err = srv.handleMessage(game, inbound{Type: "resign"})
	testutil.AssertContains(t, err.Error(), "unknown message type")

	err = srv.handleMessage(game, inbound{Type: MessageTypeMove, Payload: json.RawMessage(`{"move":"f3 f3"}`)})
	testutil.AssertErrorIs(t, err, errors.ErrWrongOwner)
	testutil.AssertEqual(t, errorBody(err).Code, "WrongOwnerSource")
}

func TestManager(t *testing.T) {
	m := NewManager(2)
	a, err := m.Create(engine.NewPosition())
	testutil.AssertNoError(t, err)
	_, err = m.Create(engine.NewPosition())
	testutil.AssertNoError(t, err)
	_, err = m.Create(engine.NewPosition())
	testutil.AssertErrorIs(t, err, errors.ErrGameLimit)

	got, err := m.Get(a.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got == a, "Get returns the created session")

	_, err = m.Get("missing")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)

	testutil.AssertTrue(t, m.Delete(a.ID), "Delete existing")
	testutil.AssertFalse(t, m.Delete(a.ID), "Delete twice")
	testutil.AssertEqual(t, m.Len(), 1)
}

func TestManagerConcurrentCreate(t *testing.T) {
	m := NewManager(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Create(engine.NewPosition()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	testutil.AssertEqual(t, len(m.IDs()), 50)
}
