package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StudioTier grades the studio a recording was made in. The tier caps the
// achievable quality and sets the hourly session rate.
type StudioTier string

const (
	StudioBasic        StudioTier = "basic"
	StudioProfessional StudioTier = "professional"
	StudioLegendary    StudioTier = "legendary"
)

type studioAttrs struct {
	hourlyRate int64
	qualityCap int
}

var studioByTier = map[StudioTier]studioAttrs{
	StudioBasic:        {hourlyRate: 50, qualityCap: 60},
	StudioProfessional: {hourlyRate: 150, qualityCap: 85},
	StudioLegendary:    {hourlyRate: 500, qualityCap: 100},
}

// Valid reports whether t is a known studio tier.
func (t StudioTier) Valid() bool {
	_, ok := studioByTier[t]
	return ok
}

// HourlyRate is the session cost per hour.
func (t StudioTier) HourlyRate() decimal.Decimal {
	return decimal.NewFromInt(studioByTier[t].hourlyRate)
}

// QualityCap is the ceiling a recording in this studio can reach.
func (t StudioTier) QualityCap() int {
	return studioByTier[t].qualityCap
}

// Recording is a studio take of one song.
type Recording struct {
	ID         uuid.UUID  `json:"id"`
	SongID     uuid.UUID  `json:"song_id"`
	PlayerID   uuid.UUID  `json:"player_id"`
	Quality    int        `json:"quality"` // capped by StudioTier
	StudioTier StudioTier `json:"studio_tier"`
	RecordedAt time.Time  `json:"recorded_at"`
	IsReleased bool       `json:"is_released"`
}
