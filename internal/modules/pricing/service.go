// README: Fare calculator: tiered base fare plus optional driver and night-stay allowances.
package pricing

import (
	"math"
	"time"

	"sairaj/internal/types"
)

type rateCard struct {
	ratePerKm       float64
	minKmPerDay     float64
	extraKmRate     float64
	driverAllowance float64
	nightAllowance  float64
}

func fallbackCard() rateCard {
	return rateCard{
		ratePerKm:       FallbackRatePerKm,
		minKmPerDay:     FallbackMinKmPerDay,
		extraKmRate:     FallbackExtraKmRate,
		driverAllowance: FallbackDriverAllowance,
		nightAllowance:  FallbackNightAllowance,
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Calculate never fails. With no distance or no vehicle it returns the zero
// Result.
func Calculate(in Input) Result {
	distance := finite(in.DistanceKm)
	if distance <= 0 || !in.VehicleSelected {
		return Result{}
	}

	card := fallbackCard()
	fallback := in.Pricing == nil
	if !fallback {
		card = rateCard{
			ratePerKm:   in.Pricing.RatePerKm.Float(),
			minKmPerDay: in.Pricing.MinKmPerDay.Float(),
			extraKmRate: in.Pricing.ExtraKmRate.Float(),
		}
		if in.Charges != nil {
			card.driverAllowance = in.Charges.DriverAllowance.Float()
			card.nightAllowance = in.Charges.NightCharge.Float()
		}
	}

	var base, extraKm float64
	if distance < card.minKmPerDay {
		base = card.minKmPerDay * card.ratePerKm
	} else {
		extraKm = distance - card.minKmPerDay
		base = card.minKmPerDay*card.ratePerKm + extraKm*card.extraKmRate
	}

	nights, datesSet := Nights(in.DepartureDate, in.ReturnDate)

	var driver, night float64
	if in.IncludeDriverAllowance {
		driver = card.driverAllowance
	}
	if in.IncludeNightStay && card.nightAllowance > 0 {
		n := nights
		if !datesSet {
			n = 1
		}
		night = card.nightAllowance * float64(max(n, 1))
	}

	return Result{
		BaseFare:                types.Amount(base),
		DriverAllowance:         types.Amount(card.driverAllowance),
		NightStayAllowance:      types.Amount(card.nightAllowance),
		FinalDriverAllowance:    types.Amount(driver),
		FinalNightStayAllowance: types.Amount(night),
		Nights:                  nights,
		RatePerKm:               types.Amount(card.ratePerKm),
		MinKmPerDay:             card.minKmPerDay,
		ExtraKmRate:             types.Amount(card.extraKmRate),
		ExtraKm:                 extraKm,
		TotalAmount:             types.Amount(base + driver + night),
		IsFallback:              fallback,
	}
}

// Nights counts the nights between two DateLayout dates. ok is false when
// either date is missing or malformed, in which case nights is 0. A return
// date before departure also yields 0.
func Nights(departure, ret string) (nights int, ok bool) {
	if departure == "" || ret == "" {
		return 0, false
	}
	d, err := time.Parse(DateLayout, departure)
	if err != nil {
		return 0, false
	}
	r, err := time.Parse(DateLayout, ret)
	if err != nil {
		return 0, false
	}
	// Whole calendar days, not days minus one: 01-01 to 01-03 is two nights
	// of stay, which the booking form's ceil(days)-1 undercounted.
	days := math.Ceil(r.Sub(d).Hours() / 24)
	return int(math.Max(days, 0)), true
}
