package domain

import (
	"math"

	"github.com/google/uuid"
)

// SkillType enumerates the seven instruments and disciplines.
type SkillType string

const (
	SkillGuitar      SkillType = "guitar"
	SkillPiano       SkillType = "piano"
	SkillDrums       SkillType = "drums"
	SkillBass        SkillType = "bass"
	SkillSongwriting SkillType = "songwriting"
	SkillPerformance SkillType = "performance"
	SkillProduction  SkillType = "production"
)

// AllSkillTypes lists every skill a new player starts with.
var AllSkillTypes = []SkillType{
	SkillGuitar,
	SkillPiano,
	SkillDrums,
	SkillBass,
	SkillSongwriting,
	SkillPerformance,
	SkillProduction,
}

// Valid reports whether t is a known skill type.
func (t SkillType) Valid() bool {
	for _, s := range AllSkillTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Skill tracks one discipline's progression. XP only increases; the level is
// always the largest L with xpRequired(L) <= CurrentXP, capped at 100.
type Skill struct {
	ID           uuid.UUID `json:"id"`
	PlayerID     uuid.UUID `json:"player_id"`
	SkillType    SkillType `json:"skill_type"`
	CurrentXP    int       `json:"current_xp"`
	CurrentLevel int       `json:"current_level"`
}

// NewSkill creates a level-0 skill.
func NewSkill(playerID uuid.UUID, t SkillType) Skill {
	return Skill{
		ID:        uuid.New(),
		PlayerID:  playerID,
		SkillType: t,
	}
}

// XPRequired returns the total XP needed to reach level.
// Formula: floor(100 * level^1.5); level 0 requires 0.
func XPRequired(level int) int {
	if level <= 0 {
		return 0
	}
	return int(XPCurveBase * math.Pow(float64(level), 1.5))
}

// AddXP accumulates amount and applies any resulting level-ups. Negative
// amounts are ignored.
func (s *Skill) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	s.CurrentXP += amount
	for s.CurrentLevel < MaxSkillLevel && s.CurrentXP >= XPRequired(s.CurrentLevel+1) {
		s.CurrentLevel++
	}
}

// XPToNextLevel returns the XP span of the current level.
func (s *Skill) XPToNextLevel() int {
	return XPRequired(s.CurrentLevel+1) - XPRequired(s.CurrentLevel)
}

// ProgressToNextLevel returns the fraction [0,1) of the current level's span
// already earned. Returns 1 at the level cap.
func (s *Skill) ProgressToNextLevel() float64 {
	if s.CurrentLevel >= MaxSkillLevel {
		return 1.0
	}
	base := XPRequired(s.CurrentLevel)
	next := XPRequired(s.CurrentLevel + 1)
	return float64(s.CurrentXP-base) / float64(next-base)
}
