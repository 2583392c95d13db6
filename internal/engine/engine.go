// Package engine owns the canonical game state and serializes every
// operation against it. Each mutating operation runs on a deep clone under
// the engine mutex; the clone replaces the canonical state only after the
// operation and the snapshot save both succeed, so callers never observe a
// partial write.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/gear"
	"github.com/cadencehq/cadence-server/internal/gig"
	"github.com/cadencehq/cadence-server/internal/housing"
	"github.com/cadencehq/cadence-server/internal/idle"
	"github.com/cadencehq/cadence-server/internal/jobpay"
	"github.com/cadencehq/cadence-server/internal/recording"
	"github.com/cadencehq/cadence-server/internal/release"
	"github.com/cadencehq/cadence-server/internal/repository"
	"github.com/cadencehq/cadence-server/internal/setlist"
	"github.com/cadencehq/cadence-server/internal/song"
	"github.com/cadencehq/cadence-server/internal/utils"
)

// Options tunes engine behavior.
type Options struct {
	// SettleOnClear makes ClearActivity and activity replacement settle the
	// slot's accrued time instead of discarding it.
	SettleOnClear bool

	// ExternalToken is the opaque player-linking token stamped onto new
	// players. The engine stores it but never interprets it.
	ExternalToken string
}

// Engine is the single writer over one player's GameState.
type Engine struct {
	mu      sync.Mutex
	state   *domain.GameState
	store   repository.StateStore
	catalog *catalog.Catalog
	now     func() time.Time
	token   string

	idle       idle.Service
	payments   jobpay.Service
	gear       gear.Service
	housing    housing.Service
	songs      song.Service
	setlists   setlist.Service
	recordings recording.Service
	releases   release.Service
	gigs       gig.Service
}

// New creates an engine over the given catalog and snapshot store.
func New(cat *catalog.Catalog, store repository.StateStore, opts Options) *Engine {
	return NewWithClock(cat, store, opts, time.Now, utils.RandomFloat)
}

// NewWithClock creates an engine with injected time and randomness for
// deterministic tests.
func NewWithClock(cat *catalog.Catalog, store repository.StateStore, opts Options, now func() time.Time, rnd func() float64) *Engine {
	payments := jobpay.NewServiceWithClock(now)
	gearSvc := gear.NewServiceWithClock(cat, now)
	housingSvc := housing.NewServiceWithClock(cat, now)
	gigs := gig.NewServiceWithClock(cat, now)

	return &Engine{
		store:      store,
		catalog:    cat,
		now:        now,
		token:      opts.ExternalToken,
		idle:       idle.NewServiceWithClock(payments, gigs, gearSvc, housingSvc, opts.SettleOnClear, now),
		payments:   payments,
		gear:       gearSvc,
		housing:    housingSvc,
		songs:      song.NewServiceWithRand(rnd, now),
		setlists:   setlist.NewServiceWithClock(now),
		recordings: recording.NewServiceWithClock(now),
		releases:   release.NewServiceWithRand(rnd, now),
		gigs:       gigs,
	}
}

// NewGame starts a fresh player and persists the initial snapshot.
func (e *Engine) NewGame(ctx context.Context, name, avatarID string, cityID uuid.UUID, now time.Time) (*domain.GameState, error) {
	if _, err := e.catalog.City(cityID); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	state := domain.NewGame(domain.NewPlayer(name, avatarID, cityID, now))
	state.Player.ExternalToken = e.token
	if err := e.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save new game: %w", err)
	}
	e.state = state
	return state.Clone(), nil
}

// Load replaces the engine's state with the player's stored snapshot.
func (e *Engine) Load(ctx context.Context, playerID uuid.UUID) error {
	state, err := e.store.LoadPlayerState(ctx, playerID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = state
	return nil
}

// mutate runs fn against a clone of the state under the engine mutex. The
// clone is saved and swapped in only when fn succeeds; on any failure the
// canonical state is untouched.
func (e *Engine) mutate(ctx context.Context, fn func(*domain.GameState) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return fmt.Errorf("%w: no game loaded", domain.ErrPlayerNotFound)
	}

	clone := e.state.Clone()
	if err := fn(clone); err != nil {
		return err
	}
	if err := e.store.Save(ctx, clone); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	e.state = clone
	return nil
}

// read runs fn against the canonical state under the engine mutex.
func (e *Engine) read(fn func(*domain.GameState)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return fmt.Errorf("%w: no game loaded", domain.ErrPlayerNotFound)
	}
	fn(e.state)
	return nil
}

// State returns a deep copy of the current state.
func (e *Engine) State() (*domain.GameState, error) {
	var out *domain.GameState
	err := e.read(func(s *domain.GameState) { out = s.Clone() })
	return out, err
}

// Tick advances idle progression, settles due paychecks and executes due
// gigs.
func (e *Engine) Tick(ctx context.Context) (idle.TickResult, error) {
	var result idle.TickResult
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		result, err = e.idle.Tick(ctx, s)
		return err
	})
	return result, err
}

// SetActivity starts an activity in a slot.
func (e *Engine) SetActivity(ctx context.Context, slot domain.SlotType, activity domain.Activity) error {
	return e.mutate(ctx, func(s *domain.GameState) error {
		return e.idle.SetActivity(ctx, s, slot, activity)
	})
}

// ClearActivity stops a slot's activity.
func (e *Engine) ClearActivity(ctx context.Context, slot domain.SlotType) error {
	return e.mutate(ctx, func(s *domain.GameState) error {
		return e.idle.ClearActivity(ctx, s, slot)
	})
}

// StartJob employs the player.
func (e *Engine) StartJob(ctx context.Context, job domain.JobType) (domain.JobPayment, error) {
	var payment domain.JobPayment
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		payment, err = e.payments.StartJob(ctx, s, job)
		return err
	})
	return payment, err
}

// QuitJob ends the player's employment and cancels pending paychecks.
func (e *Engine) QuitJob(ctx context.Context) error {
	return e.mutate(ctx, func(s *domain.GameState) error {
		return e.payments.QuitJob(ctx, s)
	})
}

// PurchaseEquipment buys a catalog item into the inventory.
func (e *Engine) PurchaseEquipment(ctx context.Context, catalogItemID uuid.UUID) (domain.Equipment, error) {
	var item domain.Equipment
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		item, err = e.gear.Purchase(ctx, s, catalogItemID)
		return err
	})
	return item, err
}

// RepairEquipment restores an owned item to full durability for a fee.
func (e *Engine) RepairEquipment(ctx context.Context, equipmentID uuid.UUID) (decimal.Decimal, error) {
	var cost decimal.Decimal
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		cost, err = e.gear.Repair(ctx, s, equipmentID)
		return err
	})
	return cost, err
}

// SellEquipment sells an owned item at its condition-scaled price.
func (e *Engine) SellEquipment(ctx context.Context, equipmentID uuid.UUID) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		price, err = e.gear.Sell(ctx, s, equipmentID)
		return err
	})
	return price, err
}

// RentHousing moves the player into a new rental.
func (e *Engine) RentHousing(ctx context.Context, housingType domain.HousingType) (domain.Housing, error) {
	var h domain.Housing
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		h, err = e.housing.Rent(ctx, s, housingType)
		return err
	})
	return h, err
}

// UpgradeHousing moves up a tier, charging the prorated difference.
func (e *Engine) UpgradeHousing(ctx context.Context, newType domain.HousingType) (decimal.Decimal, error) {
	var charge decimal.Decimal
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		charge, err = e.housing.Upgrade(ctx, s, newType)
		return err
	})
	return charge, err
}

// DowngradeHousing moves down a tier, crediting the prorated difference.
func (e *Engine) DowngradeHousing(ctx context.Context, newType domain.HousingType) (decimal.Decimal, error) {
	var credit decimal.Decimal
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		credit, err = e.housing.Downgrade(ctx, s, newType)
		return err
	})
	return credit, err
}

// PayRent pays the given number of weeks in advance.
func (e *Engine) PayRent(ctx context.Context, weeks int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		total, err = e.housing.PayRent(ctx, s, weeks)
		return err
	})
	return total, err
}

// ProcessHousingUpkeep runs the periodic rent pass: passive mood, automatic
// payment of overdue rent and the eviction-avoidance downgrade.
func (e *Engine) ProcessHousingUpkeep(ctx context.Context) (housing.UpkeepResult, error) {
	var result housing.UpkeepResult
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		result, err = e.housing.ProcessUpkeep(ctx, s)
		return err
	})
	return result, err
}

// CreateSong writes a new song.
func (e *Engine) CreateSong(ctx context.Context, title string, genre domain.MusicGenre, mood domain.SongMood, primaryInstrument domain.SkillType) (domain.Song, error) {
	var sng domain.Song
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		sng, err = e.songs.Create(ctx, s, title, genre, mood, primaryInstrument)
		return err
	})
	return sng, err
}

// CreateSetlist assembles songs into a setlist.
func (e *Engine) CreateSetlist(ctx context.Context, name string, songIDs []uuid.UUID) (domain.Setlist, error) {
	var sl domain.Setlist
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		sl, err = e.setlists.Create(ctx, s, name, songIDs)
		return err
	})
	return sl, err
}

// RehearseSetlist rehearses a setlist for the given hours.
func (e *Engine) RehearseSetlist(ctx context.Context, setlistID uuid.UUID, hours float64) (domain.Setlist, error) {
	var sl domain.Setlist
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		sl, err = e.setlists.Rehearse(ctx, s, setlistID, hours)
		return err
	})
	return sl, err
}

// RecordSong books studio time for a song.
func (e *Engine) RecordSong(ctx context.Context, songID uuid.UUID, tier domain.StudioTier, hours int) (domain.Recording, error) {
	var rec domain.Recording
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		rec, err = e.recordings.Record(ctx, s, songID, tier, hours)
		return err
	})
	return rec, err
}

// PublishRelease publishes recordings as a single or an album.
func (e *Engine) PublishRelease(ctx context.Context, title string, releaseType domain.ReleaseType, recordingIDs []uuid.UUID) (domain.Release, error) {
	var rel domain.Release
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		rel, err = e.releases.Publish(ctx, s, title, releaseType, recordingIDs)
		return err
	})
	return rel, err
}

// ProcessWeeklyStreaming accrues streaming plays and revenue for all
// published releases.
func (e *Engine) ProcessWeeklyStreaming(ctx context.Context) (release.StreamingResult, error) {
	var result release.StreamingResult
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		result, err = e.releases.ProcessWeeklyStreaming(ctx, s)
		return err
	})
	return result, err
}

// BookGig reserves a venue for a future show.
func (e *Engine) BookGig(ctx context.Context, venueID, setlistID uuid.UUID, scheduledAt time.Time, ticketPrice decimal.Decimal) (domain.Gig, error) {
	var g domain.Gig
	err := e.mutate(ctx, func(s *domain.GameState) error {
		var err error
		g, err = e.gigs.Book(ctx, s, venueID, setlistID, scheduledAt, ticketPrice)
		return err
	})
	return g, err
}

// CancelGig calls off a booked gig and refunds the booking cost.
func (e *Engine) CancelGig(ctx context.Context, gigID uuid.UUID) error {
	return e.mutate(ctx, func(s *domain.GameState) error {
		return e.gigs.Cancel(ctx, s, gigID)
	})
}
