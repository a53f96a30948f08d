// Package models holds the domain types shared by the parser, categorizer
// and aggregation packages.
package models

import (
	"time"

	"github.com/shopspring/decimal"

	"lrocha/extrato-csv/internal/dateutils"
)

// Transaction is one parsed, validated statement record. The sign of Amount
// is the sole discriminator between income and expense: positive is inflow,
// negative is outflow. Category is empty until categorization runs and is
// never empty afterwards.
type Transaction struct {
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
}

// IsIncome reports whether the transaction is an inflow.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// Day returns the transaction's calendar day with time-of-day truncated.
func (t Transaction) Day() time.Time {
	return dateutils.TruncateToDay(t.Date)
}
