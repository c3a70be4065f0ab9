package calculation

import "github.com/vetfin/vetplan/internal/domain"

// AssetAllocationData splits a risk profile into chart slices
func AssetAllocationData(profile domain.RiskProfile) []domain.ChartSlice {
	return []domain.ChartSlice{
		{Name: "Stocks", Value: profile.StockPercent},
		{Name: "Bonds", Value: profile.BondPercent},
		{Name: "Cash", Value: profile.CashPercent},
	}
}

// IncomeSourcesData lists the capital behind each retirement income source
func IncomeSourcesData(savings, pension, disability float64) []domain.ChartSlice {
	return []domain.ChartSlice{
		{Name: "Investments", Value: roundDollars(savings)},
		{Name: "Pension", Value: roundDollars(pension)},
		{Name: "Disability", Value: roundDollars(disability)},
	}
}
