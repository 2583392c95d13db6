package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/engine"
)

// MusicHandler serves the creative pipeline: writing songs, arranging
// setlists, rehearsing, recording, and publishing releases.
type MusicHandler struct {
	engine *engine.Engine
}

func NewMusicHandler(eng *engine.Engine) *MusicHandler {
	return &MusicHandler{engine: eng}
}

// CreateSongRequest is the request body for writing a song
type CreateSongRequest struct {
	Title             string `json:"title" validate:"required,max=128,excludesall=<>"`
	Genre             string `json:"genre" validate:"required"`
	Mood              string `json:"mood" validate:"required"`
	PrimaryInstrument string `json:"primary_instrument" validate:"required"`
}

// HandleCreateSong writes a song with quality derived from songwriting
// and instrument skill
func (h *MusicHandler) HandleCreateSong(w http.ResponseWriter, r *http.Request) {
	var req CreateSongRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create song"); err != nil {
		return
	}

	song, err := h.engine.CreateSong(r.Context(), req.Title,
		domain.MusicGenre(req.Genre), domain.SongMood(req.Mood), domain.SkillType(req.PrimaryInstrument))
	if err != nil {
		respondServiceError(w, r, "Create song", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Data: song})
}

// HandleGetUnreleasedSongs lists songs not yet part of a release
func (h *MusicHandler) HandleGetUnreleasedSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.engine.UnreleasedSongs()
	if err != nil {
		respondServiceError(w, r, "Get unreleased songs", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: songs})
}

// CreateSetlistRequest is the request body for arranging a setlist
type CreateSetlistRequest struct {
	Name    string      `json:"name" validate:"required,max=128,excludesall=<>"`
	SongIDs []uuid.UUID `json:"song_ids" validate:"required,min=3"`
}

// HandleCreateSetlist arranges owned songs into a performable setlist
func (h *MusicHandler) HandleCreateSetlist(w http.ResponseWriter, r *http.Request) {
	var req CreateSetlistRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create setlist"); err != nil {
		return
	}

	setlist, err := h.engine.CreateSetlist(r.Context(), req.Name, req.SongIDs)
	if err != nil {
		respondServiceError(w, r, "Create setlist", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Data: setlist})
}

// RehearseRequest is the request body for rehearsing a setlist
type RehearseRequest struct {
	SetlistID uuid.UUID `json:"setlist_id" validate:"required"`
	Hours     float64   `json:"hours" validate:"required,gt=0,max=24"`
}

// HandleRehearse raises a setlist's rehearsal level
func (h *MusicHandler) HandleRehearse(w http.ResponseWriter, r *http.Request) {
	var req RehearseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rehearse setlist"); err != nil {
		return
	}

	setlist, err := h.engine.RehearseSetlist(r.Context(), req.SetlistID, req.Hours)
	if err != nil {
		respondServiceError(w, r, "Rehearse setlist", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: setlist})
}

// RecordSongRequest is the request body for a studio session
type RecordSongRequest struct {
	SongID     uuid.UUID `json:"song_id" validate:"required"`
	StudioTier string    `json:"studio_tier" validate:"required"`
	Hours      int       `json:"hours" validate:"required,min=1,max=24"`
}

// HandleRecordSong records a song at a studio tier, paying the hourly rate
func (h *MusicHandler) HandleRecordSong(w http.ResponseWriter, r *http.Request) {
	var req RecordSongRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record song"); err != nil {
		return
	}

	recording, err := h.engine.RecordSong(r.Context(), req.SongID,
		domain.StudioTier(req.StudioTier), req.Hours)
	if err != nil {
		respondServiceError(w, r, "Record song", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Data: recording})
}

// HandleGetUnreleasedRecordings lists recordings not yet published
func (h *MusicHandler) HandleGetUnreleasedRecordings(w http.ResponseWriter, r *http.Request) {
	recordings, err := h.engine.UnreleasedRecordings()
	if err != nil {
		respondServiceError(w, r, "Get unreleased recordings", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: recordings})
}

// PublishReleaseRequest is the request body for publishing a release
type PublishReleaseRequest struct {
	Title        string      `json:"title" validate:"required,max=128,excludesall=<>"`
	ReleaseType  string      `json:"release_type" validate:"required"`
	RecordingIDs []uuid.UUID `json:"recording_ids" validate:"required,min=1"`
}

// HandlePublishRelease publishes recordings as a single or an album
func (h *MusicHandler) HandlePublishRelease(w http.ResponseWriter, r *http.Request) {
	var req PublishReleaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Publish release"); err != nil {
		return
	}

	release, err := h.engine.PublishRelease(r.Context(), req.Title,
		domain.ReleaseType(req.ReleaseType), req.RecordingIDs)
	if err != nil {
		respondServiceError(w, r, "Publish release", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Data: release})
}
