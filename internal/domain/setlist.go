package domain

import (
	"time"

	"github.com/google/uuid"
)

// Setlist is an ordered selection of songs prepared for live performance.
// Quality only increases, through rehearsal.
type Setlist struct {
	ID             uuid.UUID   `json:"id"`
	PlayerID       uuid.UUID   `json:"player_id"`
	Name           string      `json:"name"`
	SongIDs        []uuid.UUID `json:"song_ids"`
	Quality        int         `json:"quality"` // 0-100
	RehearsalHours float64     `json:"rehearsal_hours"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// SongCount returns the number of songs in the setlist.
func (s *Setlist) SongCount() int {
	return len(s.SongIDs)
}

// IsReady reports whether the setlist is performable: at least three songs
// and enough rehearsal behind it.
func (s *Setlist) IsReady() bool {
	return s.SongCount() >= SetlistMinSongs && s.Quality >= SetlistReadyQuality
}
