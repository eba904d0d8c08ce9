package pricing

import (
	"fmt"
	"sort"

	"homely/models"
)

// Breakdown produces the itemized decomposition displayed next to a quote:
// one amount line per contributing room, item, delivery or area, a zero-amount
// line per non-unity multiplier applied, and a final zero-amount line for the
// scheduled-days factor. Amounts are summed first, then each multiplier line
// is applied to the running subtotal in order. A missing or mismatched
// category detail yields no adjustments and a total equal to the base price.
func (e *Engine) Breakdown(svc models.Service, cfg models.ServiceConfiguration) models.PriceBreakdown {
	base := e.basePrice(svc, cfg)

	var adjustments []models.PriceAdjustment
	switch {
	case svc.Category == models.CategoryCleaning && cfg.Cleaning != nil:
		adjustments = e.cleaningAdjustments(svc, cfg.Cleaning)
	case svc.Category == models.CategoryLaundry && cfg.Laundry != nil:
		adjustments = e.laundryAdjustments(base, cfg.Laundry)
	case svc.Category == models.CategoryCooking && cfg.Cooking != nil:
		adjustments = e.cookingAdjustments(base, cfg.Cooking)
	case svc.Category == models.CategoryPestControl && cfg.PestControl != nil:
		adjustments = e.pestControlAdjustments(cfg.PestControl)
	default:
		return models.PriceBreakdown{
			BasePrice:   base,
			Adjustments: []models.PriceAdjustment{},
			TotalPrice:  base,
		}
	}

	var subtotal float64
	for _, adj := range adjustments {
		subtotal += adj.Amount
	}
	for _, adj := range adjustments {
		if adj.Multiplier != 0 {
			subtotal *= adj.Multiplier
		}
	}

	days := len(cfg.ScheduledDays)
	adjustments = append(adjustments, models.PriceAdjustment{
		Label:      fmt.Sprintf("Scheduled days: %d", days),
		Multiplier: float64(days),
	})

	return models.PriceBreakdown{
		BasePrice:   base,
		Adjustments: adjustments,
		TotalPrice:  subtotal * float64(days),
	}
}

func (e *Engine) cleaningAdjustments(svc models.Service, d *models.CleaningDetail) []models.PriceAdjustment {
	roomPrices := svc.RoomPrices
	if roomPrices == nil {
		roomPrices = e.rates.RoomPrices
	}

	rooms := make([]models.RoomType, 0, len(d.Rooms))
	for room := range d.Rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })

	adjustments := make([]models.PriceAdjustment, 0, len(rooms)+2)
	for _, room := range rooms {
		qty := d.Rooms[room]
		adjustments = append(adjustments, models.PriceAdjustment{
			Label:  fmt.Sprintf("%s x %d", room, qty),
			Amount: roomPrices[room] * float64(qty),
		})
	}
	adjustments = appendMultiplier(adjustments,
		fmt.Sprintf("Cleaning type: %s", d.CleaningType), multiplier(e.rates.CleaningType, d.CleaningType))
	adjustments = appendMultiplier(adjustments,
		fmt.Sprintf("House type: %s", d.HouseType), multiplier(e.rates.HouseType, d.HouseType))
	return adjustments
}

func (e *Engine) laundryAdjustments(base float64, d *models.LaundryDetail) []models.PriceAdjustment {
	var adjustments []models.PriceAdjustment
	if len(d.Items) > 0 {
		items := make([]models.LaundryItem, 0, len(d.Items))
		for item := range d.Items {
			items = append(items, item)
		}
		sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
		for _, item := range items {
			qty := d.Items[item]
			adjustments = append(adjustments, models.PriceAdjustment{
				Label:  fmt.Sprintf("%s x %d", item, qty),
				Amount: e.rates.ItemPrices[item] * float64(qty),
			})
		}
	} else {
		adjustments = append(adjustments, models.PriceAdjustment{
			Label:  fmt.Sprintf("Bags x %d", d.Bags),
			Amount: base * float64(d.Bags),
		})
	}
	return appendMultiplier(adjustments,
		fmt.Sprintf("Laundry type: %s", d.LaundryType), multiplier(e.rates.LaundryType, d.LaundryType))
}

func (e *Engine) cookingAdjustments(base float64, d *models.CookingDetail) []models.PriceAdjustment {
	adjustments := make([]models.PriceAdjustment, 0, len(d.MealsPerDelivery)+1)
	for _, delivery := range d.MealsPerDelivery {
		adjustments = append(adjustments, models.PriceAdjustment{
			Label:  fmt.Sprintf("%s: %d meals", delivery.Day, delivery.Count),
			Amount: base * float64(delivery.Count),
		})
	}
	return appendMultiplier(adjustments,
		fmt.Sprintf("Meal type: %s", d.MealType), multiplier(e.rates.MealType, d.MealType))
}

func (e *Engine) pestControlAdjustments(d *models.PestControlDetail) []models.PriceAdjustment {
	adjustments := make([]models.PriceAdjustment, 0, len(d.Areas)+2)
	for _, area := range d.Areas {
		price, ok := e.rates.AreaPrices[area]
		if !ok {
			price = e.rates.DefaultAreaPrice
		}
		adjustments = append(adjustments, models.PriceAdjustment{
			Label:  string(area),
			Amount: price,
		})
	}
	adjustments = appendMultiplier(adjustments,
		fmt.Sprintf("Severity: %s", d.Severity), multiplier(e.rates.PestSeverity, d.Severity))
	adjustments = appendMultiplier(adjustments,
		fmt.Sprintf("Treatment: %s", d.TreatmentType), multiplier(e.rates.TreatmentType, d.TreatmentType))
	return adjustments
}

// appendMultiplier adds a zero-amount multiplier line, skipping unity factors
// so the displayed trail only carries factors that changed the price.
func appendMultiplier(adjustments []models.PriceAdjustment, label string, m float64) []models.PriceAdjustment {
	if m == 1.0 {
		return adjustments
	}
	return append(adjustments, models.PriceAdjustment{Label: label, Multiplier: m})
}
