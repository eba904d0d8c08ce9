package pricing

import "homely/models"

// RateTable holds every multiplier and flat-rate table the engine prices
// against. Tables are fixed for the engine's lifetime; tests and regional
// deployments construct their own instead of mutating the default.
type RateTable struct {
	CleaningType  map[models.CleaningType]float64
	HouseType     map[models.HouseType]float64
	LaundryType   map[models.LaundryType]float64
	MealType      map[models.MealType]float64
	PestSeverity  map[models.PestSeverity]float64
	TreatmentType map[models.TreatmentType]float64

	// RoomPrices is the fallback table used when a service defines no
	// room prices of its own.
	RoomPrices map[models.RoomType]float64
	ItemPrices map[models.LaundryItem]float64
	AreaPrices map[models.PestArea]float64

	// DefaultAreaPrice is charged for area names missing from AreaPrices.
	// Rooms and items missing from their tables contribute 0 instead.
	DefaultAreaPrice float64
}

// DefaultRateTable returns the production rate card (Naira).
func DefaultRateTable() RateTable {
	return RateTable{
		CleaningType: map[models.CleaningType]float64{
			models.CleaningStandard:         1.0,
			models.CleaningDeep:             1.5,
			models.CleaningPostConstruction: 2.0,
			models.CleaningMoveInOut:        1.8,
		},
		HouseType: map[models.HouseType]float64{
			models.HouseFlat:     1.0,
			models.HouseBungalow: 1.2,
			models.HouseDuplex:   1.3,
			models.HouseMansion:  1.5,
		},
		LaundryType: map[models.LaundryType]float64{
			models.LaundryWashAndFold: 1.0,
			models.LaundryWashAndIron: 1.2,
			models.LaundryDryCleaning: 1.5,
		},
		MealType: map[models.MealType]float64{
			models.MealBasic:    1.0,
			models.MealStandard: 1.2,
			models.MealPremium:  1.5,
		},
		PestSeverity: map[models.PestSeverity]float64{
			models.SeverityLow:    1.0,
			models.SeverityMedium: 1.3,
			models.SeverityHigh:   1.6,
		},
		TreatmentType: map[models.TreatmentType]float64{
			models.TreatmentOneTime:    1.0,
			models.TreatmentResidual:   1.2,
			models.TreatmentFumigation: 1.5,
		},
		RoomPrices: map[models.RoomType]float64{
			models.RoomBedroom:    2000,
			models.RoomBathroom:   1500,
			models.RoomKitchen:    2500,
			models.RoomLivingRoom: 2000,
			models.RoomDiningRoom: 1500,
			models.RoomBalcony:    1000,
			models.RoomStudy:      1500,
			models.RoomStore:      1000,
		},
		ItemPrices: map[models.LaundryItem]float64{
			models.ItemShirts:   500,
			models.ItemTrousers: 500,
			models.ItemSuits:    1500,
			models.ItemDresses:  800,
			models.ItemNatives:  700,
			models.ItemBeddings: 1000,
			models.ItemDuvets:   2000,
		},
		AreaPrices: map[models.PestArea]float64{
			models.AreaKitchen:    3000,
			models.AreaBedroom:    2500,
			models.AreaLivingRoom: 3000,
			models.AreaBathroom:   2000,
			models.AreaStore:      1500,
			models.AreaGarden:     3500,
			models.AreaWholeHouse: 10000,
		},
		DefaultAreaPrice: 1000,
	}
}

// multiplier reads a factor from a table, treating unknown keys as 1.0 so a
// stale enum value degrades the quote instead of corrupting it.
func multiplier[K comparable](table map[K]float64, key K) float64 {
	if m, ok := table[key]; ok {
		return m
	}
	return 1.0
}
