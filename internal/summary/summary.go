// Package summary computes the canonical aggregation views for one run:
// scalar KPIs, the per-category expense breakdown and the daily series.
// Everything is derived once from the categorized transaction set; the
// presentation layer only reads the result and never recomputes.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"lrocha/extrato-csv/internal/models"
)

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// DailyPoint is one day's absolute expense total.
type DailyPoint struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// DailyFlow pairs a day's income with its absolute expense. Days appearing
// on only one side carry zero on the other.
type DailyFlow struct {
	Date    time.Time       `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Summary is the full aggregated view of one categorized transaction set.
type Summary struct {
	Profile          string `json:"profile"`
	TransactionCount int    `json:"transaction_count"`

	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"` // keeps its negative sign
	Balance      decimal.Decimal `json:"balance"`
	TaxTotal     decimal.Decimal `json:"tax_total"` // negative, zero without a tax category

	ProfitMarginPct decimal.Decimal `json:"profit_margin_pct"`
	TaxBurdenPct    decimal.Decimal `json:"tax_burden_pct"`

	// BalanceStatus annotates the balance: surplus, deficit or even.
	BalanceStatus string `json:"balance_status"`

	CategoryBreakdown    []CategoryTotal `json:"category_breakdown"`
	DailySeries          []DailyPoint    `json:"daily_series"`
	DailyIncomeVsExpense []DailyFlow     `json:"daily_income_vs_expense"`
}

var oneHundred = decimal.NewFromInt(100)

// Compute derives the summary from a categorized transaction set. An empty
// set yields zero KPIs and empty views, never an error.
func Compute(transactions []models.Transaction, profile models.Profile) *Summary {
	s := &Summary{
		Profile:              profile.Name,
		TransactionCount:     len(transactions),
		TotalIncome:          decimal.Zero,
		TotalExpense:         decimal.Zero,
		Balance:              decimal.Zero,
		TaxTotal:             decimal.Zero,
		ProfitMarginPct:      decimal.Zero,
		TaxBurdenPct:         decimal.Zero,
		CategoryBreakdown:    []CategoryTotal{},
		DailySeries:          []DailyPoint{},
		DailyIncomeVsExpense: []DailyFlow{},
	}

	breakdown := make(map[string]decimal.Decimal)
	expenseByDay := make(map[time.Time]decimal.Decimal)
	incomeByDay := make(map[time.Time]decimal.Decimal)

	for _, tx := range transactions {
		day := tx.Day()
		switch {
		case tx.IsIncome():
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			incomeByDay[day] = incomeByDay[day].Add(tx.Amount)
		case tx.IsExpense():
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
			expenseByDay[day] = expenseByDay[day].Add(tx.Amount.Abs())

			if profile.TaxCategory != "" && tx.Category == profile.TaxCategory {
				s.TaxTotal = s.TaxTotal.Add(tx.Amount)
			}
			// Expenses that landed in the revenue category stay out of the
			// breakdown.
			if tx.Category != profile.RevenueCategory {
				breakdown[tx.Category] = breakdown[tx.Category].Add(tx.Amount.Abs())
			}
		}
		// Zero-amount transactions count toward TransactionCount only.
	}

	s.Balance = s.TotalIncome.Add(s.TotalExpense)
	s.BalanceStatus = balanceStatus(s.Balance)

	if s.TotalIncome.IsPositive() {
		s.ProfitMarginPct = s.Balance.Div(s.TotalIncome).Mul(oneHundred).Round(2)
		s.TaxBurdenPct = s.TaxTotal.Abs().Div(s.TotalIncome).Mul(oneHundred).Round(2)
	}

	s.CategoryBreakdown = sortedBreakdown(breakdown)
	s.DailySeries = sortedDailySeries(expenseByDay)
	s.DailyIncomeVsExpense = joinedDailyFlows(incomeByDay, expenseByDay)

	return s
}

func balanceStatus(balance decimal.Decimal) string {
	switch {
	case balance.IsPositive():
		return models.BalanceStatusSurplus
	case balance.IsNegative():
		return models.BalanceStatusDeficit
	default:
		return models.BalanceStatusEven
	}
}

// sortedBreakdown orders the breakdown descending by total, ties broken by
// category name so the output is deterministic.
func sortedBreakdown(totals map[string]decimal.Decimal) []CategoryTotal {
	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		cmp := breakdown[i].Total.Cmp(breakdown[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// sortedDailySeries orders the expense-per-day buckets ascending by date.
// Days without expenses are not synthesized.
func sortedDailySeries(byDay map[time.Time]decimal.Decimal) []DailyPoint {
	series := make([]DailyPoint, 0, len(byDay))
	for day, total := range byDay {
		series = append(series, DailyPoint{Date: day, Total: total})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

// joinedDailyFlows outer-joins the per-day income and expense buckets over
// the union of dates, filling the missing side with zero. This is the one
// view that gap-fills.
func joinedDailyFlows(incomeByDay, expenseByDay map[time.Time]decimal.Decimal) []DailyFlow {
	days := make(map[time.Time]bool, len(incomeByDay)+len(expenseByDay))
	for day := range incomeByDay {
		days[day] = true
	}
	for day := range expenseByDay {
		days[day] = true
	}

	flows := make([]DailyFlow, 0, len(days))
	for day := range days {
		income := incomeByDay[day]
		expense := expenseByDay[day]
		flows = append(flows, DailyFlow{Date: day, Income: income, Expense: expense})
	}
	sort.Slice(flows, func(i, j int) bool {
		return flows[i].Date.Before(flows[j].Date)
	})
	return flows
}
