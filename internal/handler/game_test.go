package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/engine"
	"github.com/cadencehq/cadence-server/internal/repository"
)

// newTestEngine returns an engine backed by the in-memory store with no
// game loaded.
func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(catalog.Default(), repository.NewMemoryStore(), engine.Options{})
}

// newGame starts a career so handlers under test have a loaded state.
func newGame(t *testing.T, eng *engine.Engine) {
	t.Helper()
	h := NewGameHandler(eng)

	body := fmt.Sprintf(`{"name":"Test Musician","city_id":"%s"}`, catalog.CityLosAngeles)
	req := httptest.NewRequest("POST", "/api/v1/game/new", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.HandleNewGame(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

// decodeData unmarshals the "data" field of a DataResponse body.
func decodeData(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp.Data
}

func TestHandleNewGame(t *testing.T) {
	eng := newTestEngine(t)
	h := NewGameHandler(eng)

	body := fmt.Sprintf(`{"name":"Alex Rivers","avatar_id":"avatar_3","city_id":"%s"}`, catalog.CityLosAngeles)
	req := httptest.NewRequest("POST", "/api/v1/game/new", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.HandleNewGame(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w.Body)
	player := data["player"].(map[string]interface{})
	assert.Equal(t, "Alex Rivers", player["name"])
	assert.Equal(t, float64(80), player["health"])
	assert.Equal(t, float64(70), player["mood"])

	wallet := data["wallet"].(map[string]interface{})
	assert.Equal(t, "500", wallet["balance"])
}

func TestHandleNewGameValidation(t *testing.T) {
	eng := newTestEngine(t)
	h := NewGameHandler(eng)

	t.Run("missing name", func(t *testing.T) {
		body := fmt.Sprintf(`{"city_id":"%s"}`, catalog.CityLosAngeles)
		req := httptest.NewRequest("POST", "/api/v1/game/new", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		h.HandleNewGame(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"This field is required"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/game/new", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()

		h.HandleNewGame(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("unknown city", func(t *testing.T) {
		body := `{"name":"Alex","city_id":"99999999-9999-9999-9999-999999999999"}`
		req := httptest.NewRequest("POST", "/api/v1/game/new", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		h.HandleNewGame(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetStateNoGame(t *testing.T) {
	eng := newTestEngine(t)
	h := NewGameHandler(eng)

	req := httptest.NewRequest("GET", "/api/v1/game/state", nil)
	w := httptest.NewRecorder()

	h.HandleGetState(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleLoadGame(t *testing.T) {
	store := repository.NewMemoryStore()
	first := engine.New(catalog.Default(), store, engine.Options{})
	newGame(t, first)

	state, err := first.State()
	require.NoError(t, err)

	// A second engine over the same store simulates a restart.
	second := engine.New(catalog.Default(), store, engine.Options{})
	h := NewGameHandler(second)

	body := fmt.Sprintf(`{"player_id":"%s"}`, state.Player.ID)
	req := httptest.NewRequest("POST", "/api/v1/game/load", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.HandleLoadGame(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w.Body)
	player := data["player"].(map[string]interface{})
	assert.Equal(t, "Test Musician", player["name"])
}

func TestHandleTick(t *testing.T) {
	eng := newTestEngine(t)
	newGame(t, eng)
	h := NewGameHandler(eng)

	req := httptest.NewRequest("POST", "/api/v1/game/tick", nil)
	w := httptest.NewRecorder()

	h.HandleTick(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp TickResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.SlotsProcessed)
	assert.Equal(t, 0, resp.GigsExecuted)
}

func TestHandleGetSummary(t *testing.T) {
	eng := newTestEngine(t)
	newGame(t, eng)
	h := NewGameHandler(eng)

	req := httptest.NewRequest("GET", "/api/v1/game/summary", nil)
	w := httptest.NewRecorder()

	h.HandleGetSummary(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RecommendedAction)
	assert.True(t, resp.CurrentJobEarnings.IsZero())
	assert.Nil(t, resp.NextPaymentDate)
}
