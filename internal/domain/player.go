package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is the single simulated musician. Health, mood and reputation are
// clamped to [0,100] on every adjustment; fame only grows.
type Player struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	AvatarID      string    `json:"avatar_id"`
	CurrentCityID uuid.UUID `json:"current_city_id"`

	Health     int `json:"health"`
	Mood       int `json:"mood"`
	Fame       int `json:"fame"`
	Reputation int `json:"reputation"`

	// ExternalToken is the opaque player-linking token from the identity
	// provider. The engine stores it but never interprets it.
	ExternalToken string `json:"external_token,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	LastSyncAt time.Time `json:"last_sync_at"`
}

// NewPlayer creates a player with onboarding defaults.
func NewPlayer(name, avatarID string, cityID uuid.UUID, now time.Time) Player {
	return Player{
		ID:            uuid.New(),
		Name:          name,
		AvatarID:      avatarID,
		CurrentCityID: cityID,
		Health:        StartingHealth,
		Mood:          StartingMood,
		Fame:          StartingFame,
		Reputation:    StartingReputation,
		CreatedAt:     now,
		LastSyncAt:    now,
	}
}

// AdjustHealth shifts health by delta, clamped to [0,100].
func (p *Player) AdjustHealth(delta int) {
	p.Health = clampAttribute(p.Health + delta)
}

// AdjustMood shifts mood by delta, clamped to [0,100].
func (p *Player) AdjustMood(delta int) {
	p.Mood = clampAttribute(p.Mood + delta)
}

// AdjustReputation shifts reputation by delta, clamped to [0,100].
func (p *Player) AdjustReputation(delta int) {
	p.Reputation = clampAttribute(p.Reputation + delta)
}

// AddFame increases fame; negative deltas are ignored since fame is monotonic.
func (p *Player) AddFame(delta int) {
	if delta > 0 {
		p.Fame += delta
	}
}

func clampAttribute(v int) int {
	if v < AttributeMin {
		return AttributeMin
	}
	if v > AttributeMax {
		return AttributeMax
	}
	return v
}
