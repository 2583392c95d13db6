package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSetActivity(t *testing.T) {
	eng := newTestEngine(t)
	newGame(t, eng)
	h := NewActivityHandler(eng)

	body := `{"slot":"primary_focus","kind":"practice","instrument":"guitar"}`
	req := httptest.NewRequest("POST", "/api/v1/activity/set", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.HandleSetActivity(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	slot := decodeData(t, w.Body)
	activity := slot["current_activity"].(map[string]interface{})
	assert.Equal(t, "practice", activity["kind"])
	assert.Equal(t, "guitar", activity["instrument"])
	assert.NotNil(t, slot["started_at"])
}

func TestHandleSetActivityValidation(t *testing.T) {
	eng := newTestEngine(t)
	newGame(t, eng)
	h := NewActivityHandler(eng)

	t.Run("unknown slot", func(t *testing.T) {
		body := `{"slot":"weekend","kind":"rest"}`
		req := httptest.NewRequest("POST", "/api/v1/activity/set", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		h.HandleSetActivity(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"slot":"Invalid slot type"`)
	})

	t.Run("unknown instrument", func(t *testing.T) {
		body := `{"slot":"primary_focus","kind":"practice","instrument":"kazoo"}`
		req := httptest.NewRequest("POST", "/api/v1/activity/set", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		h.HandleSetActivity(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleClearActivity(t *testing.T) {
	eng := newTestEngine(t)
	newGame(t, eng)
	activityHandler := NewActivityHandler(eng)

	set := httptest.NewRequest("POST", "/api/v1/activity/set",
		bytes.NewBufferString(`{"slot":"free_time","kind":"rest"}`))
	sw := httptest.NewRecorder()
	activityHandler.HandleSetActivity(sw, set)
	require.Equal(t, http.StatusOK, sw.Code)

	req := httptest.NewRequest("POST", "/api/v1/activity/clear",
		bytes.NewBufferString(`{"slot":"free_time"}`))
	w := httptest.NewRecorder()

	activityHandler.HandleClearActivity(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgActivityCleared)

	state, err := eng.State()
	require.NoError(t, err)
	assert.False(t, state.FreeTime.IsActive())
}
