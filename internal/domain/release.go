package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReleaseType distinguishes singles from albums.
type ReleaseType string

const (
	ReleaseSingle ReleaseType = "single"
	ReleaseAlbum  ReleaseType = "album"
)

// MinTracks is the minimum recording count for this release type.
func (t ReleaseType) MinTracks() int {
	if t == ReleaseAlbum {
		return 5
	}
	return 1
}

// Valid reports whether t is a known release type.
func (t ReleaseType) Valid() bool {
	return t == ReleaseSingle || t == ReleaseAlbum
}

// Release is a published set of recordings. Plays and revenue accrue on the
// periodic streaming pass.
type Release struct {
	ID           uuid.UUID       `json:"id"`
	PlayerID     uuid.UUID       `json:"player_id"`
	Title        string          `json:"title"`
	Type         ReleaseType     `json:"type"`
	RecordingIDs []uuid.UUID     `json:"recording_ids"`
	ReleasedAt   time.Time       `json:"released_at"`
	TotalPlays   int             `json:"total_plays"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
