package pricing

import (
	"homely/models"
)

// Engine computes quote totals for a service configuration. It holds only an
// immutable rate table: every method is a pure function of its inputs, never
// errors, and degrades missing or mismatched configuration to a base-price
// quote so callers always get a number back.
type Engine struct {
	rates RateTable
}

// NewEngine builds an engine over the given rate table.
func NewEngine(rates RateTable) *Engine {
	return &Engine{rates: rates}
}

// NewDefaultEngine builds an engine over the production rate card.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRateTable())
}

// Quote returns the total price for one booking configuration. The category
// subtotal scales linearly with the number of scheduled days; no days means
// a zero quote.
func (e *Engine) Quote(svc models.Service, cfg models.ServiceConfiguration) float64 {
	base := e.basePrice(svc, cfg)

	var subtotal float64
	switch svc.Category {
	case models.CategoryCleaning:
		subtotal = e.cleaningPrice(svc, base, cfg.Cleaning)
	case models.CategoryLaundry:
		subtotal = e.laundryPrice(base, cfg.Laundry)
	case models.CategoryCooking:
		subtotal = e.cookingPrice(base, cfg.Cooking)
	case models.CategoryPestControl:
		subtotal = e.pestControlPrice(base, cfg.PestControl)
	default:
		subtotal = base
	}

	return subtotal * float64(len(cfg.ScheduledDays))
}

// basePrice resolves the starting price: a selected catalog option wins, then
// a caller override, then the service's own price, then zero.
func (e *Engine) basePrice(svc models.Service, cfg models.ServiceConfiguration) float64 {
	if opt, ok := svc.OptionByID(cfg.SelectedOption); ok {
		return opt.Price
	}
	if cfg.Price != nil {
		return *cfg.Price
	}
	return svc.Price
}

// cleaningPrice sums per-room cost and applies the cleaning- and house-type
// multipliers. A service without its own room prices uses the default table;
// rooms unknown to the chosen table contribute 0.
func (e *Engine) cleaningPrice(svc models.Service, base float64, d *models.CleaningDetail) float64 {
	if d == nil {
		return base
	}
	roomPrices := svc.RoomPrices
	if roomPrices == nil {
		roomPrices = e.rates.RoomPrices
	}
	var roomCost float64
	for room, qty := range d.Rooms {
		roomCost += roomPrices[room] * float64(qty)
	}
	return roomCost * multiplier(e.rates.CleaningType, d.CleaningType) * multiplier(e.rates.HouseType, d.HouseType)
}

// laundryPrice prices per item when an item map with entries is supplied,
// otherwise per bag off the base price. A supplied map whose quantities sum
// to zero still prices per item; it does not fall back to bags.
func (e *Engine) laundryPrice(base float64, d *models.LaundryDetail) float64 {
	if d == nil {
		return base
	}
	var cost float64
	if len(d.Items) > 0 {
		for item, qty := range d.Items {
			cost += e.rates.ItemPrices[item] * float64(qty)
		}
	} else {
		cost = base * float64(d.Bags)
	}
	return cost * multiplier(e.rates.LaundryType, d.LaundryType)
}

// cookingPrice charges the base price per meal across all deliveries, scaled
// by the meal-type multiplier.
func (e *Engine) cookingPrice(base float64, d *models.CookingDetail) float64 {
	if d == nil {
		return base
	}
	totalMeals := 0
	for _, delivery := range d.MealsPerDelivery {
		totalMeals += delivery.Count
	}
	return base * float64(totalMeals) * multiplier(e.rates.MealType, d.MealType)
}

// pestControlPrice sums per-area cost (unknown areas charge the fixed
// default) and applies severity and treatment multipliers.
func (e *Engine) pestControlPrice(base float64, d *models.PestControlDetail) float64 {
	if d == nil {
		return base
	}
	var areaCost float64
	for _, area := range d.Areas {
		if price, ok := e.rates.AreaPrices[area]; ok {
			areaCost += price
		} else {
			areaCost += e.rates.DefaultAreaPrice
		}
	}
	return areaCost * multiplier(e.rates.PestSeverity, d.Severity) * multiplier(e.rates.TreatmentType, d.TreatmentType)
}
