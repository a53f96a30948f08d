// Package report renders the computed summary for the presentation
// consumers: an indented JSON document, the categorized detail table as CSV,
// or a plain-text rendition for the terminal.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"lrocha/extrato-csv/internal/common"
	"lrocha/extrato-csv/internal/dateutils"
	"lrocha/extrato-csv/internal/logging"
	"lrocha/extrato-csv/internal/models"
	"lrocha/extrato-csv/internal/summary"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// DetailRow is one line of the categorized detail table, with dates and
// amounts already in the Brazilian display convention.
type DetailRow struct {
	Data      string `csv:"Data"`
	Descricao string `csv:"Descricao_Transacao"`
	Categoria string `csv:"Categoria"`
	Valor     string `csv:"Valor"`
}

// Generator renders summaries in the supported formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Generate renders the summary and the categorized transactions in the
// requested format. Unsupported formats yield an error naming the format.
func (g *Generator) Generate(s *summary.Summary, transactions []models.Transaction, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return g.generateJSON(s)
	case FormatCSV:
		return g.generateCSV(transactions)
	case FormatText:
		return g.generateText(s), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// jsonSummary mirrors summary.Summary with amounts as fixed two-decimal
// strings and dates in ISO form, so the JSON output is stable.
type jsonSummary struct {
	Profile          string `json:"profile"`
	TransactionCount int    `json:"transaction_count"`

	TotalIncome     string `json:"total_income"`
	TotalExpense    string `json:"total_expense"`
	Balance         string `json:"balance"`
	TaxTotal        string `json:"tax_total"`
	ProfitMarginPct string `json:"profit_margin_pct"`
	TaxBurdenPct    string `json:"tax_burden_pct"`
	BalanceStatus   string `json:"balance_status"`

	CategoryBreakdown    []jsonCategoryTotal `json:"category_breakdown"`
	DailySeries          []jsonDailyPoint    `json:"daily_series"`
	DailyIncomeVsExpense []jsonDailyFlow     `json:"daily_income_vs_expense"`
}

type jsonCategoryTotal struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type jsonDailyPoint struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

type jsonDailyFlow struct {
	Date    string `json:"date"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

func (g *Generator) generateJSON(s *summary.Summary) ([]byte, error) {
	view := jsonSummary{
		Profile:              s.Profile,
		TransactionCount:     s.TransactionCount,
		TotalIncome:          s.TotalIncome.StringFixed(2),
		TotalExpense:         s.TotalExpense.StringFixed(2),
		Balance:              s.Balance.StringFixed(2),
		TaxTotal:             s.TaxTotal.StringFixed(2),
		ProfitMarginPct:      s.ProfitMarginPct.StringFixed(2),
		TaxBurdenPct:         s.TaxBurdenPct.StringFixed(2),
		BalanceStatus:        s.BalanceStatus,
		CategoryBreakdown:    make([]jsonCategoryTotal, 0, len(s.CategoryBreakdown)),
		DailySeries:          make([]jsonDailyPoint, 0, len(s.DailySeries)),
		DailyIncomeVsExpense: make([]jsonDailyFlow, 0, len(s.DailyIncomeVsExpense)),
	}
	for _, ct := range s.CategoryBreakdown {
		view.CategoryBreakdown = append(view.CategoryBreakdown, jsonCategoryTotal{
			Category: ct.Category,
			Total:    ct.Total.StringFixed(2),
		})
	}
	for _, dp := range s.DailySeries {
		view.DailySeries = append(view.DailySeries, jsonDailyPoint{
			Date:  dateutils.FormatDate(dp.Date, dateutils.DateLayoutISO),
			Total: dp.Total.StringFixed(2),
		})
	}
	for _, df := range s.DailyIncomeVsExpense {
		view.DailyIncomeVsExpense = append(view.DailyIncomeVsExpense, jsonDailyFlow{
			Date:    dateutils.FormatDate(df.Date, dateutils.DateLayoutISO),
			Income:  df.Income.StringFixed(2),
			Expense: df.Expense.StringFixed(2),
		})
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateCSV(transactions []models.Transaction) ([]byte, error) {
	rows := DetailRows(transactions)

	var buf bytes.Buffer
	if err := common.WriteRows(rows, &buf, g.logger); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) generateText(s *summary.Summary) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Resumo Financeiro (%s)\n", s.Profile)
	fmt.Fprintf(&buf, "Transações:      %d\n", s.TransactionCount)
	fmt.Fprintf(&buf, "Receita Total:   %s\n", models.FormatBRL(s.TotalIncome))
	fmt.Fprintf(&buf, "Despesa Total:   %s\n", models.FormatBRL(s.TotalExpense))
	fmt.Fprintf(&buf, "Saldo:           %s (%s)\n", models.FormatBRL(s.Balance), s.BalanceStatus)
	fmt.Fprintf(&buf, "Margem:          %s%%\n", s.ProfitMarginPct.StringFixed(2))
	if !s.TaxTotal.IsZero() || !s.TaxBurdenPct.IsZero() {
		fmt.Fprintf(&buf, "Impostos:        %s\n", models.FormatBRL(s.TaxTotal))
		fmt.Fprintf(&buf, "Carga Tributária: %s%%\n", s.TaxBurdenPct.StringFixed(2))
	}

	if len(s.CategoryBreakdown) > 0 {
		fmt.Fprintf(&buf, "\nGastos por Categoria:\n")
		for _, ct := range s.CategoryBreakdown {
			fmt.Fprintf(&buf, "  %-26s %s\n", ct.Category, models.FormatBRL(ct.Total))
		}
	}

	if len(s.DailySeries) > 0 {
		fmt.Fprintf(&buf, "\nGastos por Dia:\n")
		for _, dp := range s.DailySeries {
			fmt.Fprintf(&buf, "  %s  %s\n",
				dateutils.FormatDate(dp.Date, dateutils.DateLayoutBrazilian),
				models.FormatBRL(dp.Total))
		}
	}

	return buf.Bytes()
}

// DetailRows builds the categorized detail table from a transaction set,
// preserving order, with dates and amounts in the Brazilian display format.
func DetailRows(transactions []models.Transaction) []DetailRow {
	rows := make([]DetailRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, DetailRow{
			Data:      dateutils.FormatDate(tx.Date, dateutils.DateLayoutBrazilian),
			Descricao: tx.Description,
			Categoria: tx.Category,
			Valor:     models.FormatBRL(tx.Amount),
		})
	}
	return rows
}
