// Package gear manages the equipment shop, owned-instrument upkeep and the
// practice bonuses instruments grant.
package gear

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/domain"
	"github.com/cadencehq/cadence-server/internal/logger"
)

// Service defines equipment business logic. Methods mutate the passed state
// in place; the caller owns locking and persistence.
type Service interface {
	Purchase(ctx context.Context, state *domain.GameState, catalogItemID uuid.UUID) (domain.Equipment, error)
	Repair(ctx context.Context, state *domain.GameState, equipmentID uuid.UUID) (decimal.Decimal, error)
	Sell(ctx context.Context, state *domain.GameState, equipmentID uuid.UUID) (decimal.Decimal, error)
	BestBonusForSkill(state *domain.GameState, skill domain.SkillType) float64
	DegradeAfterUse(state *domain.GameState, skill domain.SkillType, amount int)
	OwnsUsable(state *domain.GameState, equipType domain.EquipmentType) bool
}

type service struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewService creates a new equipment service backed by the shop catalog.
func NewService(cat *catalog.Catalog) Service {
	return &service{catalog: cat, now: time.Now}
}

// NewServiceWithClock creates a service with an injected clock for tests.
func NewServiceWithClock(cat *catalog.Catalog, now func() time.Time) Service {
	return &service{catalog: cat, now: now}
}

// Purchase buys a shop listing, deducting its price and adding a fresh
// instance to the inventory.
func (s *service) Purchase(ctx context.Context, state *domain.GameState, catalogItemID uuid.UUID) (domain.Equipment, error) {
	log := logger.FromContext(ctx)

	item, err := s.catalog.EquipmentItem(catalogItemID)
	if err != nil {
		return domain.Equipment{}, err
	}

	if err := state.Wallet.DeductExpense(item.Price); err != nil {
		return domain.Equipment{}, fmt.Errorf("purchase %s: %w", item.Name, err)
	}

	owned := domain.Equipment{
		ID:            uuid.New(),
		OwnerID:       state.Player.ID,
		EquipmentType: item.EquipmentType,
		Tier:          item.Tier,
		Name:          item.Name,
		BasePrice:     item.Price,
		Durability:    domain.DurabilityMax,
		PurchasedAt:   s.now(),
	}
	state.AddEquipment(owned)

	log.Info("Equipment purchased", "name", item.Name, "price", item.Price, "balance", state.Wallet.Balance)
	return owned, nil
}

// Repair restores an owned item to full durability for a cost proportional to
// the damage.
func (s *service) Repair(ctx context.Context, state *domain.GameState, equipmentID uuid.UUID) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	equip := state.Equipment(equipmentID)
	if equip == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrEquipmentNotFound, equipmentID)
	}

	cost := equip.RepairCost()
	if err := state.Wallet.DeductExpense(cost); err != nil {
		return decimal.Zero, fmt.Errorf("repair %s: %w", equip.Name, err)
	}
	equip.Repair()

	log.Info("Equipment repaired", "name", equip.Name, "cost", cost)
	return cost, nil
}

// Sell removes an owned item and credits half its base price scaled by
// remaining condition.
func (s *service) Sell(ctx context.Context, state *domain.GameState, equipmentID uuid.UUID) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	equip := state.Equipment(equipmentID)
	if equip == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrEquipmentNotFound, equipmentID)
	}

	price := equip.SellPrice()
	name := equip.Name
	state.Wallet.AddIncome(price)
	state.RemoveEquipment(equipmentID)

	log.Info("Equipment sold", "name", name, "price", price)
	return price, nil
}

// BestBonusForSkill returns the highest practice bonus among usable gear
// matching the skill, or the neutral bonus when none qualifies.
func (s *service) BestBonusForSkill(state *domain.GameState, skill domain.SkillType) float64 {
	best := domain.DefaultEquipBonus
	for i := range state.Inventory {
		e := &state.Inventory[i]
		if e.EquipmentType.RelatedSkill() != skill || !e.IsUsable() {
			continue
		}
		if bonus := e.PerformanceBonus(); bonus > best {
			best = bonus
		}
	}
	return best
}

// DegradeAfterUse wears down the single item whose bonus applied, matching
// the gear BestBonusForSkill would have picked.
func (s *service) DegradeAfterUse(state *domain.GameState, skill domain.SkillType, amount int) {
	var best *domain.Equipment
	for i := range state.Inventory {
		e := &state.Inventory[i]
		if e.EquipmentType.RelatedSkill() != skill || !e.IsUsable() {
			continue
		}
		if best == nil || e.PerformanceBonus() > best.PerformanceBonus() {
			best = e
		}
	}
	if best != nil {
		best.ReduceDurability(amount)
	}
}

// OwnsUsable reports whether the player owns working gear of the given type.
func (s *service) OwnsUsable(state *domain.GameState, equipType domain.EquipmentType) bool {
	for i := range state.Inventory {
		e := &state.Inventory[i]
		if e.EquipmentType == equipType && e.IsUsable() {
			return true
		}
	}
	return false
}
