package valuation

import (
	"testing"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVehicleValue(t *testing.T) {
	now := date(2026, time.June, 15)

	tests := []struct {
		name    string
		vehicle models.Vehicle
		want    float64
	}{
		{
			name: "two years of 10% depreciation",
			vehicle: models.Vehicle{
				PurchasePrice:    100000,
				DepreciationRate: 10,
				PurchaseDate:     date(2024, time.June, 1),
			},
			want: 81000,
		},
		{
			name: "floor of 10% after 30 years",
			vehicle: models.Vehicle{
				PurchasePrice:    100000,
				DepreciationRate: 10,
				PurchaseDate:     date(1996, time.June, 1),
			},
			want: 10000,
		},
		{
			name: "purchased this year keeps full value",
			vehicle: models.Vehicle{
				PurchasePrice:    50000,
				DepreciationRate: 10,
				PurchaseDate:     date(2026, time.January, 10),
			},
			want: 50000,
		},
		{
			name: "zero rate never depreciates",
			vehicle: models.Vehicle{
				PurchasePrice:    30000,
				DepreciationRate: 0,
				PurchaseDate:     date(2010, time.March, 1),
			},
			want: 30000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VehicleValue(&tt.vehicle, now), 0.001)
		})
	}
}

func TestVehicleValueOverrideWins(t *testing.T) {
	now := date(2026, time.June, 15)
	override := 72500.0
	vehicle := models.Vehicle{
		PurchasePrice:    100000,
		CurrentValue:     &override,
		DepreciationRate: 10,
		PurchaseDate:     date(2020, time.June, 1),
	}
	assert.Equal(t, override, VehicleValue(&vehicle, now))
}

func TestInvestmentValue(t *testing.T) {
	currentPrice := 32.5

	t.Run("quantity times current price", func(t *testing.T) {
		inv := models.Investment{Quantity: 100, PurchasePrice: 28, CurrentPrice: &currentPrice}
		assert.InDelta(t, 3250, InvestmentValue(&inv), 0.001)
	})

	t.Run("falls back to purchase price", func(t *testing.T) {
		inv := models.Investment{Quantity: 100, PurchasePrice: 28}
		assert.InDelta(t, 2800, InvestmentValue(&inv), 0.001)
	})

	t.Run("zero quantity treated as single unit", func(t *testing.T) {
		inv := models.Investment{Quantity: 0, PurchasePrice: 5000}
		assert.InDelta(t, 5000, InvestmentValue(&inv), 0.001)
	})
}

func TestRealEstateAnnualYield(t *testing.T) {
	marketValue := 600000.0

	tests := []struct {
		name   string
		estate models.RealEstate
		want   float64
	}{
		{
			name:   "rented at 2000/month over 600000",
			estate: models.RealEstate{IsRented: true, MonthlyRent: 2000, CurrentValue: &marketValue, PurchasePrice: 500000},
			want:   4,
		},
		{
			name:   "unrented yields zero",
			estate: models.RealEstate{IsRented: false, MonthlyRent: 2000, PurchasePrice: 500000},
			want:   0,
		},
		{
			name:   "zero value yields zero",
			estate: models.RealEstate{IsRented: true, MonthlyRent: 2000, PurchasePrice: 0},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RealEstateAnnualYield(&tt.estate), 0.001)
		})
	}
}

func TestExoticAssetValue(t *testing.T) {
	t.Run("USD asset converted by rate", func(t *testing.T) {
		asset := models.ExoticAsset{PurchasePrice: 1000, Currency: "USD"}
		assert.InDelta(t, 5200, ExoticAssetValue(&asset, 5.2), 0.001)
	})

	t.Run("zero rate leaves value untouched", func(t *testing.T) {
		asset := models.ExoticAsset{PurchasePrice: 1000, Currency: "USD"}
		assert.InDelta(t, 1000, ExoticAssetValue(&asset, 0), 0.001)
	})

	t.Run("BRL asset ignores rate", func(t *testing.T) {
		asset := models.ExoticAsset{PurchasePrice: 1000, Currency: "BRL"}
		assert.InDelta(t, 1000, ExoticAssetValue(&asset, 5.2), 0.001)
	})

	t.Run("override wins before conversion", func(t *testing.T) {
		override := 1500.0
		asset := models.ExoticAsset{PurchasePrice: 1000, CurrentValue: &override, Currency: "USD"}
		assert.InDelta(t, 7800, ExoticAssetValue(&asset, 5.2), 0.001)
	})
}

func TestRetirementPlanValue(t *testing.T) {
	now := date(2026, time.June, 1)

	t.Run("compounds monthly since start", func(t *testing.T) {
		plan := models.RetirementPlan{
			Balance:      10000,
			InterestRate: 12,
			StartDate:    date(2025, time.June, 1),
		}
		// 12 months at 1% per month
		assert.InDelta(t, 11268.25, RetirementPlanValue(&plan, now), 0.01)
	})

	t.Run("zero rate returns balance", func(t *testing.T) {
		plan := models.RetirementPlan{Balance: 10000, StartDate: date(2020, time.January, 1)}
		assert.InDelta(t, 10000, RetirementPlanValue(&plan, now), 0.001)
	})

	t.Run("override wins", func(t *testing.T) {
		override := 9000.0
		plan := models.RetirementPlan{Balance: 10000, InterestRate: 12, CurrentValue: &override,
			StartDate: date(2020, time.January, 1)}
		assert.Equal(t, override, RetirementPlanValue(&plan, now))
	})
}
