// Package catalog supplies the immutable reference data the engine reads but
// does not own: cities, venues and the equipment shop. Catalogs are loaded
// once at startup and treated as read-only lookup tables keyed by identifier.
package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
)

// City is a playable location. The housing cost multiplier scales every rent
// in that city.
type City struct {
	ID                    uuid.UUID       `yaml:"id" json:"id"`
	Name                  string          `yaml:"name" json:"name"`
	Country               string          `yaml:"country" json:"country"`
	MusicFocus            []string        `yaml:"music_focus" json:"music_focus"`
	HousingCostMultiplier decimal.Decimal `yaml:"housing_cost_multiplier" json:"housing_cost_multiplier"`
}

// VenueType grades venues by size and prestige.
type VenueType string

const (
	VenueStreet      VenueType = "street"
	VenueSmallClub   VenueType = "small_club"
	VenueMidClub     VenueType = "mid_club"
	VenueConcertHall VenueType = "concert_hall"
	VenueArena       VenueType = "arena"
)

// ReferenceTicketPrice anchors the price-sensitivity curve for attendance.
func (t VenueType) ReferenceTicketPrice() decimal.Decimal {
	switch t {
	case VenueStreet, VenueSmallClub:
		return decimal.NewFromInt(20)
	default:
		return decimal.NewFromInt(50)
	}
}

// Venue is a bookable performance location.
type Venue struct {
	ID          uuid.UUID       `yaml:"id" json:"id"`
	Name        string          `yaml:"name" json:"name"`
	CityID      uuid.UUID       `yaml:"city_id" json:"city_id"`
	Capacity    int             `yaml:"capacity" json:"capacity"`
	BookingCost decimal.Decimal `yaml:"booking_cost" json:"booking_cost"`
	MinFame     int             `yaml:"min_fame" json:"min_fame"`
	VenueType   VenueType       `yaml:"venue_type" json:"venue_type"`
}

// EquipmentItem is one shop listing. Purchasing creates an owned
// domain.Equipment instance at full durability.
type EquipmentItem struct {
	ID            uuid.UUID            `yaml:"id" json:"id"`
	EquipmentType domain.EquipmentType `yaml:"equipment_type" json:"equipment_type"`
	Tier          domain.EquipmentTier `yaml:"tier" json:"tier"`
	Name          string               `yaml:"name" json:"name"`
	Price         decimal.Decimal      `yaml:"price" json:"price"`
}

// Catalog bundles all reference data with identifier lookups.
type Catalog struct {
	cities    map[uuid.UUID]City
	venues    map[uuid.UUID]Venue
	equipment map[uuid.UUID]EquipmentItem

	cityList  []City
	venueList []Venue
	equipList []EquipmentItem
}

// New builds a catalog from slices, indexing by ID.
func New(cities []City, venues []Venue, equipment []EquipmentItem) (*Catalog, error) {
	c := &Catalog{
		cities:    make(map[uuid.UUID]City, len(cities)),
		venues:    make(map[uuid.UUID]Venue, len(venues)),
		equipment: make(map[uuid.UUID]EquipmentItem, len(equipment)),
		cityList:  cities,
		venueList: venues,
		equipList: equipment,
	}
	for _, city := range cities {
		if city.ID == uuid.Nil {
			return nil, fmt.Errorf("city %q has no id", city.Name)
		}
		c.cities[city.ID] = city
	}
	for _, v := range venues {
		if v.ID == uuid.Nil {
			return nil, fmt.Errorf("venue %q has no id", v.Name)
		}
		if _, ok := c.cities[v.CityID]; !ok {
			return nil, fmt.Errorf("venue %q references unknown city %s", v.Name, v.CityID)
		}
		c.venues[v.ID] = v
	}
	for _, e := range equipment {
		if e.ID == uuid.Nil {
			return nil, fmt.Errorf("equipment item %q has no id", e.Name)
		}
		if !e.EquipmentType.Valid() {
			return nil, fmt.Errorf("equipment item %q has unknown type %q", e.Name, e.EquipmentType)
		}
		c.equipment[e.ID] = e
	}
	return c, nil
}

// City returns the city with id.
func (c *Catalog) City(id uuid.UUID) (City, error) {
	city, ok := c.cities[id]
	if !ok {
		return City{}, fmt.Errorf("%w: %s", domain.ErrCityNotFound, id)
	}
	return city, nil
}

// Venue returns the venue with id.
func (c *Catalog) Venue(id uuid.UUID) (Venue, error) {
	v, ok := c.venues[id]
	if !ok {
		return Venue{}, fmt.Errorf("%w: %s", domain.ErrVenueNotFound, id)
	}
	return v, nil
}

// EquipmentItem returns the shop listing with id.
func (c *Catalog) EquipmentItem(id uuid.UUID) (EquipmentItem, error) {
	e, ok := c.equipment[id]
	if !ok {
		return EquipmentItem{}, fmt.Errorf("%w: catalog item %s", domain.ErrEquipmentNotFound, id)
	}
	return e, nil
}

// Cities returns all cities.
func (c *Catalog) Cities() []City { return c.cityList }

// Venues returns all venues.
func (c *Catalog) Venues() []Venue { return c.venueList }

// EquipmentItems returns the whole shop.
func (c *Catalog) EquipmentItems() []EquipmentItem { return c.equipList }

// VenuesInCity filters venues by city.
func (c *Catalog) VenuesInCity(cityID uuid.UUID) []Venue {
	out := make([]Venue, 0, len(c.venueList))
	for _, v := range c.venueList {
		if v.CityID == cityID {
			out = append(out, v)
		}
	}
	return out
}
