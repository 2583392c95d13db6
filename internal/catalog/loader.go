package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cadencehq/cadence-server/internal/domain"
)

const (
	citiesFile    = "cities.yaml"
	venuesFile    = "venues.yaml"
	equipmentFile = "equipment.yaml"
)

// Raw documents mirror the on-disk shape. Money fields are plain numbers in
// YAML and converted to decimals on load.
type rawCity struct {
	ID                    string    `yaml:"id"`
	Name                  string    `yaml:"name"`
	Country               string    `yaml:"country"`
	MusicFocus            []string  `yaml:"music_focus"`
	HousingCostMultiplier float64   `yaml:"housing_cost_multiplier"`
}

type rawVenue struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	CityID      string    `yaml:"city_id"`
	Capacity    int       `yaml:"capacity"`
	BookingCost float64   `yaml:"booking_cost"`
	MinFame     int       `yaml:"min_fame"`
	VenueType   VenueType `yaml:"venue_type"`
}

type rawEquipmentItem struct {
	ID            string               `yaml:"id"`
	EquipmentType domain.EquipmentType `yaml:"equipment_type"`
	Tier          domain.EquipmentTier `yaml:"tier"`
	Name          string               `yaml:"name"`
	Price         float64              `yaml:"price"`
}

type catalogDoc struct {
	Cities    []rawCity          `yaml:"cities"`
	Venues    []rawVenue         `yaml:"venues"`
	Equipment []rawEquipmentItem `yaml:"equipment"`
}

// Load reads cities.yaml, venues.yaml and equipment.yaml from dir and builds
// an indexed catalog.
func Load(dir string) (*Catalog, error) {
	var doc catalogDoc
	if err := readYAML(filepath.Join(dir, citiesFile), &doc); err != nil {
		return nil, err
	}
	if err := readYAML(filepath.Join(dir, venuesFile), &doc); err != nil {
		return nil, err
	}
	if err := readYAML(filepath.Join(dir, equipmentFile), &doc); err != nil {
		return nil, err
	}

	cities := make([]City, 0, len(doc.Cities))
	for _, r := range doc.Cities {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("city %q: bad id: %w", r.Name, err)
		}
		cities = append(cities, City{
			ID:                    id,
			Name:                  r.Name,
			Country:               r.Country,
			MusicFocus:            r.MusicFocus,
			HousingCostMultiplier: decimal.NewFromFloat(r.HousingCostMultiplier),
		})
	}
	venues := make([]Venue, 0, len(doc.Venues))
	for _, r := range doc.Venues {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("venue %q: bad id: %w", r.Name, err)
		}
		cityID, err := uuid.Parse(r.CityID)
		if err != nil {
			return nil, fmt.Errorf("venue %q: bad city id: %w", r.Name, err)
		}
		venues = append(venues, Venue{
			ID:          id,
			Name:        r.Name,
			CityID:      cityID,
			Capacity:    r.Capacity,
			BookingCost: decimal.NewFromFloat(r.BookingCost),
			MinFame:     r.MinFame,
			VenueType:   r.VenueType,
		})
	}
	equipment := make([]EquipmentItem, 0, len(doc.Equipment))
	for _, r := range doc.Equipment {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("equipment item %q: bad id: %w", r.Name, err)
		}
		equipment = append(equipment, EquipmentItem{
			ID:            id,
			EquipmentType: r.EquipmentType,
			Tier:          r.Tier,
			Name:          r.Name,
			Price:         decimal.NewFromFloat(r.Price),
		})
	}
	return New(cities, venues, equipment)
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
