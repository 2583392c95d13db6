package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cadencehq/cadence-server/internal/domain"
)

// Stable identifiers for the built-in reference data. These match the shipped
// YAML files so saved states stay valid whichever source the catalog came from.
var (
	CityLosAngeles = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	CityNewYork    = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	CityLondon     = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	CityIstanbul   = uuid.MustParse("00000000-0000-0000-0000-000000000004")
	CityTokyo      = uuid.MustParse("00000000-0000-0000-0000-000000000005")

	VenueTroubadour    = uuid.MustParse("10000000-0000-0000-0000-000000000001")
	VenueMercuryLounge = uuid.MustParse("10000000-0000-0000-0000-000000000002")
	VenueTheGarage     = uuid.MustParse("10000000-0000-0000-0000-000000000003")
	VenueBabylon       = uuid.MustParse("10000000-0000-0000-0000-000000000004")
	VenueClubQuattro   = uuid.MustParse("10000000-0000-0000-0000-000000000005")
)

// Default returns the built-in catalog, used when no catalog directory is
// configured and by tests.
func Default() *Catalog {
	c, err := New(defaultCities(), defaultVenues(), defaultEquipment())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultCities() []City {
	return []City{
		{ID: CityLosAngeles, Name: "Los Angeles", Country: "USA", MusicFocus: []string{"Pop", "Hip-Hop", "Film Music"}, HousingCostMultiplier: decimal.NewFromFloat(1.5)},
		{ID: CityNewYork, Name: "New York", Country: "USA", MusicFocus: []string{"Jazz", "Indie", "Hip-Hop"}, HousingCostMultiplier: decimal.NewFromFloat(1.6)},
		{ID: CityLondon, Name: "London", Country: "UK", MusicFocus: []string{"Rock", "Electronic", "Pop"}, HousingCostMultiplier: decimal.NewFromFloat(1.4)},
		{ID: CityIstanbul, Name: "Istanbul", Country: "Turkey", MusicFocus: []string{"Pop", "Folk", "Fusion"}, HousingCostMultiplier: decimal.NewFromFloat(0.7)},
		{ID: CityTokyo, Name: "Tokyo", Country: "Japan", MusicFocus: []string{"J-Pop", "Electronic", "Idol"}, HousingCostMultiplier: decimal.NewFromFloat(1.3)},
	}
}

func defaultVenues() []Venue {
	cost := decimal.NewFromInt(50)
	return []Venue{
		{ID: VenueTroubadour, Name: "The Troubadour", CityID: CityLosAngeles, Capacity: 100, BookingCost: cost, MinFame: 0, VenueType: VenueSmallClub},
		{ID: VenueMercuryLounge, Name: "Mercury Lounge", CityID: CityNewYork, Capacity: 80, BookingCost: cost, MinFame: 0, VenueType: VenueSmallClub},
		{ID: VenueTheGarage, Name: "The Garage", CityID: CityLondon, Capacity: 120, BookingCost: cost, MinFame: 0, VenueType: VenueSmallClub},
		{ID: VenueBabylon, Name: "Babylon", CityID: CityIstanbul, Capacity: 90, BookingCost: cost, MinFame: 0, VenueType: VenueSmallClub},
		{ID: VenueClubQuattro, Name: "Club Quattro", CityID: CityTokyo, Capacity: 110, BookingCost: cost, MinFame: 0, VenueType: VenueSmallClub},
	}
}

func defaultEquipment() []EquipmentItem {
	item := func(n int, t domain.EquipmentType, tier domain.EquipmentTier, name string, price int64) EquipmentItem {
		return EquipmentItem{
			ID:            uuid.MustParse(equipmentID(n)),
			EquipmentType: t,
			Tier:          tier,
			Name:          name,
			Price:         decimal.NewFromInt(price),
		}
	}
	return []EquipmentItem{
		item(1, domain.EquipGuitar, domain.TierBasic, "Beginner's Acoustic", 150),
		item(2, domain.EquipGuitar, domain.TierProfessional, "Fender Stratocaster", 1200),
		item(3, domain.EquipGuitar, domain.TierLegendary, "Gibson Les Paul Custom", 4500),
		item(4, domain.EquipPiano, domain.TierBasic, "Digital Keyboard", 200),
		item(5, domain.EquipPiano, domain.TierProfessional, "Yamaha Digital Piano", 1500),
		item(6, domain.EquipPiano, domain.TierLegendary, "Steinway Grand Piano", 50000),
		item(7, domain.EquipDrums, domain.TierBasic, "Entry Drum Kit", 300),
		item(8, domain.EquipDrums, domain.TierProfessional, "Pearl Export Series", 2000),
		item(9, domain.EquipDrums, domain.TierLegendary, "DW Collector's Series", 8000),
		item(10, domain.EquipBass, domain.TierBasic, "Starter Bass Guitar", 180),
		item(11, domain.EquipBass, domain.TierProfessional, "Fender Precision Bass", 1400),
		item(12, domain.EquipBass, domain.TierLegendary, "Music Man StingRay", 3500),
		item(13, domain.EquipMicrophone, domain.TierBasic, "USB Microphone", 80),
		item(14, domain.EquipMicrophone, domain.TierProfessional, "Shure SM7B", 400),
		item(15, domain.EquipMicrophone, domain.TierLegendary, "Neumann U87", 3500),
		item(16, domain.EquipProductionGear, domain.TierBasic, "Basic Audio Interface", 100),
		item(17, domain.EquipProductionGear, domain.TierProfessional, "Focusrite Scarlett 18i20", 550),
		item(18, domain.EquipProductionGear, domain.TierLegendary, "Universal Audio Apollo", 2500),
	}
}

func equipmentID(n int) string {
	return fmt.Sprintf("20000000-0000-0000-0000-0000000000%02d", n)
}
