package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameState is the aggregate root: one consistent snapshot of the whole
// simulation. It is mutated only through manager operations, always under a
// single writer.
type GameState struct {
	Player       Player     `json:"player"`
	Wallet       Wallet     `json:"wallet"`
	Skills       []Skill    `json:"skills"`
	PrimaryFocus TimeSlot   `json:"primary_focus"`
	FreeTime     TimeSlot   `json:"free_time"`
	FanBase      int        `json:"fan_base"`
	CurrentJob   *JobType   `json:"current_job,omitempty"`
	JobStartedAt *time.Time `json:"job_started_at,omitempty"`

	Songs       []Song       `json:"songs"`
	Setlists    []Setlist    `json:"setlists"`
	Recordings  []Recording  `json:"recordings"`
	Releases    []Release    `json:"releases"`
	Gigs        []Gig        `json:"gigs"`
	JobPayments []JobPayment `json:"job_payments"`
	Inventory   []Equipment  `json:"inventory"`
	Housing     *Housing     `json:"housing,omitempty"`
}

// NewGame creates the starting state for a fresh player: full skill set at
// level 0, starting wallet, two empty slots.
func NewGame(player Player) *GameState {
	skills := make([]Skill, 0, len(AllSkillTypes))
	for _, t := range AllSkillTypes {
		skills = append(skills, NewSkill(player.ID, t))
	}
	return &GameState{
		Player:       player,
		Wallet:       NewWallet(player.ID),
		Skills:       skills,
		PrimaryFocus: NewTimeSlot(player.ID, SlotPrimaryFocus),
		FreeTime:     NewTimeSlot(player.ID, SlotFreeTime),
	}
}

// Clone returns a deep copy. Managers mutate a clone; the owner swaps it in
// only when the whole operation succeeded.
func (g *GameState) Clone() *GameState {
	c := *g

	c.Skills = append([]Skill(nil), g.Skills...)
	c.Songs = append([]Song(nil), g.Songs...)
	c.Setlists = make([]Setlist, len(g.Setlists))
	for i, s := range g.Setlists {
		s.SongIDs = append([]uuid.UUID(nil), s.SongIDs...)
		c.Setlists[i] = s
	}
	c.Recordings = append([]Recording(nil), g.Recordings...)
	c.Releases = make([]Release, len(g.Releases))
	for i, r := range g.Releases {
		r.RecordingIDs = append([]uuid.UUID(nil), r.RecordingIDs...)
		c.Releases[i] = r
	}
	c.Gigs = make([]Gig, len(g.Gigs))
	for i, gig := range g.Gigs {
		if gig.Results != nil {
			res := *gig.Results
			gig.Results = &res
		}
		c.Gigs[i] = gig
	}
	c.JobPayments = make([]JobPayment, len(g.JobPayments))
	for i, p := range g.JobPayments {
		if p.PaidDate != nil {
			d := *p.PaidDate
			p.PaidDate = &d
		}
		c.JobPayments[i] = p
	}
	c.Inventory = append([]Equipment(nil), g.Inventory...)

	c.PrimaryFocus = cloneSlot(g.PrimaryFocus)
	c.FreeTime = cloneSlot(g.FreeTime)

	if g.CurrentJob != nil {
		j := *g.CurrentJob
		c.CurrentJob = &j
	}
	if g.JobStartedAt != nil {
		t := *g.JobStartedAt
		c.JobStartedAt = &t
	}
	if g.Housing != nil {
		h := *g.Housing
		c.Housing = &h
	}
	return &c
}

func cloneSlot(s TimeSlot) TimeSlot {
	if s.CurrentActivity != nil {
		a := *s.CurrentActivity
		s.CurrentActivity = &a
	}
	if s.StartedAt != nil {
		t := *s.StartedAt
		s.StartedAt = &t
	}
	if s.SettledAt != nil {
		t := *s.SettledAt
		s.SettledAt = &t
	}
	return s
}

// Slot returns the slot with the given type.
func (g *GameState) Slot(t SlotType) *TimeSlot {
	if t == SlotFreeTime {
		return &g.FreeTime
	}
	return &g.PrimaryFocus
}

// Skill returns the skill of the given type, or nil.
func (g *GameState) Skill(t SkillType) *Skill {
	for i := range g.Skills {
		if g.Skills[i].SkillType == t {
			return &g.Skills[i]
		}
	}
	return nil
}

// SkillLevel returns the level of the given skill, zero when missing.
func (g *GameState) SkillLevel(t SkillType) int {
	if s := g.Skill(t); s != nil {
		return s.CurrentLevel
	}
	return 0
}

// Song returns the song with id, or nil.
func (g *GameState) Song(id uuid.UUID) *Song {
	for i := range g.Songs {
		if g.Songs[i].ID == id {
			return &g.Songs[i]
		}
	}
	return nil
}

// AddSong appends a song to the collection.
func (g *GameState) AddSong(s Song) {
	g.Songs = append(g.Songs, s)
}

// UnreleasedSongs returns songs not yet part of a release.
func (g *GameState) UnreleasedSongs() []Song {
	out := make([]Song, 0, len(g.Songs))
	for _, s := range g.Songs {
		if !s.IsReleased {
			out = append(out, s)
		}
	}
	return out
}

// Setlist returns the setlist with id, or nil.
func (g *GameState) Setlist(id uuid.UUID) *Setlist {
	for i := range g.Setlists {
		if g.Setlists[i].ID == id {
			return &g.Setlists[i]
		}
	}
	return nil
}

// AddSetlist appends a setlist to the collection.
func (g *GameState) AddSetlist(s Setlist) {
	g.Setlists = append(g.Setlists, s)
}

// Recording returns the recording with id, or nil.
func (g *GameState) Recording(id uuid.UUID) *Recording {
	for i := range g.Recordings {
		if g.Recordings[i].ID == id {
			return &g.Recordings[i]
		}
	}
	return nil
}

// AddRecording appends a recording to the collection.
func (g *GameState) AddRecording(r Recording) {
	g.Recordings = append(g.Recordings, r)
}

// UnreleasedRecordings returns recordings available for a release.
func (g *GameState) UnreleasedRecordings() []Recording {
	out := make([]Recording, 0, len(g.Recordings))
	for _, r := range g.Recordings {
		if !r.IsReleased {
			out = append(out, r)
		}
	}
	return out
}

// Release returns the release with id, or nil.
func (g *GameState) Release(id uuid.UUID) *Release {
	for i := range g.Releases {
		if g.Releases[i].ID == id {
			return &g.Releases[i]
		}
	}
	return nil
}

// AddRelease appends a release to the collection.
func (g *GameState) AddRelease(r Release) {
	g.Releases = append(g.Releases, r)
}

// Gig returns the gig with id, or nil.
func (g *GameState) Gig(id uuid.UUID) *Gig {
	for i := range g.Gigs {
		if g.Gigs[i].ID == id {
			return &g.Gigs[i]
		}
	}
	return nil
}

// AddGig appends a gig to the collection.
func (g *GameState) AddGig(gig Gig) {
	g.Gigs = append(g.Gigs, gig)
}

// UpcomingGigs returns booked future gigs, soonest first.
func (g *GameState) UpcomingGigs(now time.Time) []Gig {
	out := make([]Gig, 0, len(g.Gigs))
	for _, gig := range g.Gigs {
		if gig.Status == GigBooked && gig.ScheduledAt.After(now) {
			out = append(out, gig)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out
}

// CompletedGigs returns finished gigs, most recent first.
func (g *GameState) CompletedGigs() []Gig {
	out := make([]Gig, 0, len(g.Gigs))
	for _, gig := range g.Gigs {
		if gig.Status == GigCompleted {
			out = append(out, gig)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.After(out[j].ScheduledAt) })
	return out
}

// Equipment returns the owned item with id, or nil.
func (g *GameState) Equipment(id uuid.UUID) *Equipment {
	for i := range g.Inventory {
		if g.Inventory[i].ID == id {
			return &g.Inventory[i]
		}
	}
	return nil
}

// AddEquipment appends an item to the inventory.
func (g *GameState) AddEquipment(e Equipment) {
	g.Inventory = append(g.Inventory, e)
}

// RemoveEquipment deletes the item with id; reports whether it existed.
func (g *GameState) RemoveEquipment(id uuid.UUID) bool {
	for i := range g.Inventory {
		if g.Inventory[i].ID == id {
			g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// EquipmentNeedingRepair returns owned gear below the repair threshold.
func (g *GameState) EquipmentNeedingRepair() []Equipment {
	out := make([]Equipment, 0, len(g.Inventory))
	for _, e := range g.Inventory {
		if e.NeedsRepair() {
			out = append(out, e)
		}
	}
	return out
}

// TotalInventoryValue sums base prices scaled by condition.
func (g *GameState) TotalInventoryValue() decimal.Decimal {
	total := decimal.Zero
	for _, e := range g.Inventory {
		total = total.Add(e.BasePrice.
			Mul(decimal.NewFromInt(int64(e.Durability))).
			Div(decimal.NewFromInt(DurabilityMax)))
	}
	return total
}

// AddJobPayment appends a scheduled payment.
func (g *GameState) AddJobPayment(p JobPayment) {
	g.JobPayments = append(g.JobPayments, p)
}

// DuePayments returns pending payments whose scheduled date has passed.
func (g *GameState) DuePayments(now time.Time) []JobPayment {
	out := make([]JobPayment, 0, len(g.JobPayments))
	for _, p := range g.JobPayments {
		if p.IsDue(now) {
			out = append(out, p)
		}
	}
	return out
}

// PendingPayments returns scheduled payments not yet settled.
func (g *GameState) PendingPayments() []JobPayment {
	out := make([]JobPayment, 0, len(g.JobPayments))
	for _, p := range g.JobPayments {
		if p.IsPending() {
			out = append(out, p)
		}
	}
	return out
}

// PaidPayments returns settled payments.
func (g *GameState) PaidPayments() []JobPayment {
	out := make([]JobPayment, 0, len(g.JobPayments))
	for _, p := range g.JobPayments {
		if p.Status == PaymentPaid {
			out = append(out, p)
		}
	}
	return out
}
