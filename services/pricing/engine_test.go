package pricing

import (
	"testing"

	"homely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleaningService() models.Service {
	return models.Service{
		ID:       "svc-cleaning",
		Category: models.CategoryCleaning,
		Price:    5000,
		RoomPrices: map[models.RoomType]float64{
			models.RoomBedroom:  2000,
			models.RoomBathroom: 1500,
		},
	}
}

func cleaningConfig(days ...string) models.ServiceConfiguration {
	return models.ServiceConfiguration{
		ScheduledDays: days,
		Cleaning: &models.CleaningDetail{
			CleaningType: models.CleaningDeep,
			HouseType:    models.HouseDuplex,
			Rooms: map[models.RoomType]int{
				models.RoomBedroom:  2,
				models.RoomBathroom: 1,
			},
		},
	}
}

func TestQuoteCleaningDeepDuplexTwoDays(t *testing.T) {
	e := NewDefaultEngine()

	// rooms 2000*2 + 1500*1 = 5500, deep 1.5 * duplex 1.3 = 1.95,
	// two days => 5500 * 1.95 * 2 = 21450
	got := e.Quote(cleaningService(), cleaningConfig("2026-09-07", "2026-09-09"))
	require.InDelta(t, 21450, got, 1e-9)
}

func TestQuoteScalesLinearlyWithScheduledDays(t *testing.T) {
	e := NewDefaultEngine()
	svc := cleaningService()

	single := e.Quote(svc, cleaningConfig("2026-09-07"))
	triple := e.Quote(svc, cleaningConfig("2026-09-07", "2026-09-08", "2026-09-09"))
	assert.InDelta(t, single*3, triple, 1e-9)
}

func TestQuoteZeroScheduledDaysCollapsesToZero(t *testing.T) {
	e := NewDefaultEngine()

	assert.Zero(t, e.Quote(cleaningService(), cleaningConfig()))

	laundry := models.Service{Category: models.CategoryLaundry, Price: 1500}
	assert.Zero(t, e.Quote(laundry, models.ServiceConfiguration{
		Laundry: &models.LaundryDetail{Bags: 4, LaundryType: models.LaundryWashAndFold},
	}))
}

func TestQuoteCategoryIsolation(t *testing.T) {
	e := NewDefaultEngine()
	svc := cleaningService()

	plain := cleaningConfig("2026-09-07")
	noisy := cleaningConfig("2026-09-07")
	noisy.Laundry = &models.LaundryDetail{Bags: 99, LaundryType: models.LaundryDryCleaning}
	noisy.Cooking = &models.CookingDetail{MealType: models.MealPremium,
		MealsPerDelivery: []models.MealDelivery{{Day: "Monday", Count: 50}}}
	noisy.PestControl = &models.PestControlDetail{Areas: []models.PestArea{models.AreaGarden},
		Severity: models.SeverityHigh, TreatmentType: models.TreatmentFumigation}

	assert.Equal(t, e.Quote(svc, plain), e.Quote(svc, noisy))
}

func TestQuoteCategoryMismatchReturnsBasePrice(t *testing.T) {
	e := NewDefaultEngine()
	svc := cleaningService()

	// Laundry detail on a cleaning service: the cleaning path sees no detail
	// and degrades to the base price, still scaled by day count.
	cfg := models.ServiceConfiguration{
		ScheduledDays: []string{"2026-09-07", "2026-09-08"},
		Laundry:       &models.LaundryDetail{Bags: 3, LaundryType: models.LaundryWashAndIron},
	}
	assert.InDelta(t, 5000*2, e.Quote(svc, cfg), 1e-9)
}

func TestQuoteBasePriceResolutionOrder(t *testing.T) {
	e := NewDefaultEngine()
	override := 2500.0

	svc := models.Service{
		Category: models.CategoryLaundry,
		Price:    1500,
		Options: []models.ServiceOption{
			{ID: "opt-premium", Name: "Premium wash", Price: 3000},
		},
	}
	cfg := models.ServiceConfiguration{
		ScheduledDays: []string{"2026-09-07"},
		Laundry:       &models.LaundryDetail{Bags: 1, LaundryType: models.LaundryWashAndFold},
	}

	// Service price alone.
	assert.InDelta(t, 1500, e.Quote(svc, cfg), 1e-9)

	// Caller override beats the service price.
	cfg.Price = &override
	assert.InDelta(t, 2500, e.Quote(svc, cfg), 1e-9)

	// Selected option beats both.
	cfg.SelectedOption = "opt-premium"
	assert.InDelta(t, 3000, e.Quote(svc, cfg), 1e-9)

	// Unknown option id falls back down the chain.
	cfg.SelectedOption = "opt-missing"
	assert.InDelta(t, 2500, e.Quote(svc, cfg), 1e-9)
}

func TestQuoteLaundryItemsVersusBags(t *testing.T) {
	e := NewDefaultEngine()
	svc := models.Service{Category: models.CategoryLaundry, Price: 1500}
	days := []string{"2026-09-07"}

	cases := []struct {
		name  string
		items map[models.LaundryItem]int
		bags  int
		want  float64
	}{
		{name: "nil items uses bag pricing", items: nil, bags: 2, want: 3000},
		{name: "empty items map uses bag pricing", items: map[models.LaundryItem]int{}, bags: 2, want: 3000},
		{name: "items ignore bags", items: map[models.LaundryItem]int{models.ItemShirts: 2}, bags: 9, want: 1000},
		{name: "zero-quantity items do not fall back", items: map[models.LaundryItem]int{models.ItemShirts: 0}, bags: 9, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := models.ServiceConfiguration{
				ScheduledDays: days,
				Laundry: &models.LaundryDetail{
					Bags:        tc.bags,
					Items:       tc.items,
					LaundryType: models.LaundryWashAndFold,
				},
			}
			assert.InDelta(t, tc.want, e.Quote(svc, cfg), 1e-9)
		})
	}
}

func TestQuoteCookingMealTotals(t *testing.T) {
	e := NewDefaultEngine()
	svc := models.Service{Category: models.CategoryCooking, Price: 800}

	cfg := models.ServiceConfiguration{
		ScheduledDays: []string{"2026-09-07"},
		Cooking: &models.CookingDetail{
			MealType: models.MealPremium,
			MealsPerDelivery: []models.MealDelivery{
				{Day: "Monday", Count: 2},
				{Day: "Thursday", Count: 3},
			},
		},
	}

	// 800 * 5 meals * 1.5 premium
	assert.InDelta(t, 6000, e.Quote(svc, cfg), 1e-9)
}

func TestQuotePestControlUnknownAreaDefault(t *testing.T) {
	e := NewDefaultEngine()
	svc := models.Service{Category: models.CategoryPestControl, Price: 5000}

	cfg := models.ServiceConfiguration{
		ScheduledDays: []string{"2026-09-07"},
		PestControl: &models.PestControlDetail{
			Areas:         []models.PestArea{models.AreaKitchen, "attic"},
			Severity:      models.SeverityLow,
			TreatmentType: models.TreatmentOneTime,
		},
	}

	// kitchen 3000 + unknown attic 1000, unity multipliers
	assert.InDelta(t, 4000, e.Quote(svc, cfg), 1e-9)
}

func TestQuoteCleaningDefaultRoomTable(t *testing.T) {
	e := NewDefaultEngine()
	svc := models.Service{Category: models.CategoryCleaning, Price: 5000} // no RoomPrices

	cfg := models.ServiceConfiguration{
		ScheduledDays: []string{"2026-09-07"},
		Cleaning: &models.CleaningDetail{
			CleaningType: models.CleaningStandard,
			HouseType:    models.HouseFlat,
			Rooms: map[models.RoomType]int{
				models.RoomKitchen: 1,
				"garage":           3, // unknown room contributes 0
			},
		},
	}
	assert.InDelta(t, 2500, e.Quote(svc, cfg), 1e-9)
}

func TestQuoteWithCustomRateTable(t *testing.T) {
	rates := DefaultRateTable()
	rates.ItemPrices = map[models.LaundryItem]float64{models.ItemShirts: 100}
	rates.LaundryType = map[models.LaundryType]float64{models.LaundryWashAndFold: 2.0}
	e := NewEngine(rates)

	svc := models.Service{Category: models.CategoryLaundry, Price: 1500}
	cfg := models.ServiceConfiguration{
		ScheduledDays: []string{"2026-09-07"},
		Laundry: &models.LaundryDetail{
			Items:       map[models.LaundryItem]int{models.ItemShirts: 3},
			LaundryType: models.LaundryWashAndFold,
		},
	}
	assert.InDelta(t, 600, e.Quote(svc, cfg), 1e-9)
}
