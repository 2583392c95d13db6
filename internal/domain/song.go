package domain

import (
	"time"

	"github.com/google/uuid"
)

// MusicGenre tags a song's genre.
type MusicGenre string

const (
	GenrePop        MusicGenre = "pop"
	GenreRock       MusicGenre = "rock"
	GenreJazz       MusicGenre = "jazz"
	GenreHipHop     MusicGenre = "hip_hop"
	GenreElectronic MusicGenre = "electronic"
	GenreFolk       MusicGenre = "folk"
)

// SongMood tags a song's emotional tone.
type SongMood string

const (
	SongUpbeat      SongMood = "upbeat"
	SongMelancholic SongMood = "melancholic"
	SongEnergetic   SongMood = "energetic"
	SongCalm        SongMood = "calm"
)

// Song is an authored composition. Quality is fixed at creation; RecordingID
// is set at most once and release is irreversible.
type Song struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	Title       string     `json:"title"`
	Genre       MusicGenre `json:"genre"`
	Mood        SongMood   `json:"mood"`
	Quality     int        `json:"quality"` // 0-100
	CreatedAt   time.Time  `json:"created_at"`
	RecordingID *uuid.UUID `json:"recording_id,omitempty"`
	IsReleased  bool       `json:"is_released"`
}

// IsRecorded reports whether the song already has a recording.
func (s *Song) IsRecorded() bool {
	return s.RecordingID != nil
}
