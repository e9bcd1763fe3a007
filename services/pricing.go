package services

import "errors"

// ErrNoPayingGuests is returned when the per-guest split would divide by
// zero. The free-quote selector rejects freeQuote >= guests before this
// can happen, so hitting it indicates a contract violation upstream.
var ErrNoPayingGuests = errors.New("number of free quotes equals the number of guests")

// Rates are the pricing constants a quote is computed against. A draft in
// progress uses DefaultRates; a persisted preventive is always priced from
// the snapshot stored on its record.
type Rates struct {
	TaxPercent        float64 `json:"tax"`
	CostPerNight      float64 `json:"costPerNight"`
	CostPerDoubleRoom float64 `json:"costPerDoubleRoom"`
	CostPerSingleRoom float64 `json:"costPerSingleRoom"`
}

// DefaultRates returns the rates currently in effect.
func DefaultRates() Rates {
	return Rates{
		TaxPercent:        DefaultTaxPercent,
		CostPerNight:      DefaultCostPerNight,
		CostPerDoubleRoom: DefaultCostPerDoubleRoom,
		CostPerSingleRoom: DefaultCostPerSingleRoom,
	}
}

// CostBreakdown is the computed output of the pricing model. It is never
// stored; it is recomputed on demand from the draft and catalog references.
type CostBreakdown struct {
	BasesCost    float64
	MealsCost    float64
	ServicesCost float64
	TotalCost    float64
	TotalWithTax float64
	PerGuestCost float64
}

// BasesCost is the lodging cost: room counts times nightly room rates
// times the number of nights.
func BasesCost(doubleRooms, singleRooms, nights int, rates Rates) float64 {
	perNight := float64(doubleRooms)*rates.CostPerDoubleRoom +
		float64(singleRooms)*rates.CostPerSingleRoom
	return perNight * float64(nights)
}

// MealsCost sums the selected lunch and dinner of every day (missing
// selections count as zero) and multiplies by the number of guests.
func MealsCost(days []DailyMeals, numberOfGuests int) float64 {
	var cost float64
	for _, d := range days {
		if d.Lunch != nil {
			cost += d.Lunch.Cost
		}
		if d.Dinner != nil {
			cost += d.Dinner.Cost
		}
	}
	return cost * float64(numberOfGuests)
}

// CostForService prices a single service for the group.
func CostForService(s Service, numberOfGuests, numberOfVans int) float64 {
	return s.CostPerPerson*float64(numberOfGuests) +
		s.GroupCost +
		s.VanCost*float64(numberOfVans)
}

// ServicesCost sums CostForService over the selected set.
func ServicesCost(services []Service, numberOfGuests, numberOfVans int) float64 {
	var cost float64
	for _, s := range services {
		cost += CostForService(s, numberOfGuests, numberOfVans)
	}
	return cost
}

// TotalWithTax applies the tax percentage on top of the total.
func TotalWithTax(total, taxPercent float64) float64 {
	return total + total*taxPercent/100
}

// PerGuestCost splits the taxed total across paying guests.
func PerGuestCost(totalWithTax float64, numberOfGuests, freeQuote int) (float64, error) {
	paying := numberOfGuests - freeQuote
	if paying <= 0 {
		return 0, ErrNoPayingGuests
	}
	return totalWithTax / float64(paying), nil
}

// ComputeBreakdown runs the full pricing model over a finalized draft and
// its resolved meal and service references. It is deterministic and free
// of side effects, so regenerating an export always reproduces the same
// numbers.
func ComputeBreakdown(d Draft, days []DailyMeals, services []Service, rates Rates) (CostBreakdown, error) {
	nights := Nights(d.CheckIn, d.CheckOut)

	b := CostBreakdown{
		BasesCost:    BasesCost(d.DoubleRooms, d.SingleRooms, nights, rates),
		MealsCost:    MealsCost(days, d.NumberOfGuests),
		ServicesCost: ServicesCost(services, d.NumberOfGuests, d.NumberOfVans),
	}
	b.TotalCost = b.BasesCost + b.MealsCost + b.ServicesCost
	b.TotalWithTax = TotalWithTax(b.TotalCost, rates.TaxPercent)

	perGuest, err := PerGuestCost(b.TotalWithTax, d.NumberOfGuests, d.FreeQuote)
	if err != nil {
		return CostBreakdown{}, err
	}
	b.PerGuestCost = perGuest

	return b, nil
}
