// Package valuation centralizes current-value computation for every
// asset class. Explicit user overrides always win; otherwise each class
// derives its value from the purchase record. All functions guard
// against zero divisors and negative factors instead of returning
// NaN/Inf.
package valuation

import (
	"math"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
)

// vehicleFloorRatio is the minimum residual value of a vehicle
// relative to its purchase price.
const vehicleFloorRatio = 0.10

// VehicleValue returns a vehicle's current value: the appraisal
// override when set, otherwise compound yearly depreciation floored at
// 10% of the purchase price.
func VehicleValue(v *models.Vehicle, now time.Time) float64 {
	if v.CurrentValue != nil {
		return *v.CurrentValue
	}
	years := yearsBetween(v.PurchaseDate, now)
	rate := v.DepreciationRate / 100
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	value := v.PurchasePrice * math.Pow(1-rate, float64(years))
	floor := v.PurchasePrice * vehicleFloorRatio
	if value < floor {
		return floor
	}
	return value
}

// InvestmentValue returns quantity times the current price, falling
// back to the purchase price when no quote is set.
func InvestmentValue(inv *models.Investment) float64 {
	price := inv.PurchasePrice
	if inv.CurrentPrice != nil {
		price = *inv.CurrentPrice
	}
	qty := inv.Quantity
	if qty == 0 {
		qty = 1
	}
	return qty * price
}

// RealEstateValue returns the market override when set, otherwise the
// purchase price.
func RealEstateValue(re *models.RealEstate) float64 {
	if re.CurrentValue != nil {
		return *re.CurrentValue
	}
	return re.PurchasePrice
}

// RealEstateAnnualYield returns the annualized rent yield as a
// percentage of the property's current value. Unrented or zero-value
// properties yield 0.
func RealEstateAnnualYield(re *models.RealEstate) float64 {
	if !re.IsRented {
		return 0
	}
	value := RealEstateValue(re)
	if value <= 0 {
		return 0
	}
	return re.MonthlyRent * 12 / value * 100
}

// ExoticAssetValue returns the override or purchase price, converted
// to BRL via usdRate for USD-denominated assets. A zero usdRate leaves
// the stored value untouched.
func ExoticAssetValue(a *models.ExoticAsset, usdRate float64) float64 {
	value := a.PurchasePrice
	if a.CurrentValue != nil {
		value = *a.CurrentValue
	}
	if a.Currency == "USD" && usdRate > 0 {
		return value * usdRate
	}
	return value
}

// RetirementPlanValue returns the override when set, otherwise the
// contributed balance compounded monthly at the plan's annual rate
// since its start date.
func RetirementPlanValue(p *models.RetirementPlan, now time.Time) float64 {
	if p.CurrentValue != nil {
		return *p.CurrentValue
	}
	months := monthsBetween(p.StartDate, now)
	if months <= 0 || p.InterestRate <= 0 {
		return p.Balance
	}
	monthlyRate := p.InterestRate / 100 / 12
	return p.Balance * math.Pow(1+monthlyRate, float64(months))
}

func yearsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func monthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
