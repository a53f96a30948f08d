// Package extratoparser parses bank-statement CSV exports with the columns
// Data, Descricao_Transacao and Valor into typed transactions.
//
// Validation is two-tier: a missing required column fails the whole run
// before any row is touched, while rows that fail to parse are silently
// dropped from the working set.
package extratoparser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"lrocha/extrato-csv/internal/common"
	"lrocha/extrato-csv/internal/dateutils"
	"lrocha/extrato-csv/internal/logging"
	"lrocha/extrato-csv/internal/models"
	"lrocha/extrato-csv/internal/parsererror"
)

// StatementRow maps one raw CSV row. All fields stay strings here; typing
// happens in convertRow so a bad value can drop just that row.
type StatementRow struct {
	Data      string `csv:"Data"`
	Descricao string `csv:"Descricao_Transacao"`
	Valor     string `csv:"Valor"`
}

// RequiredColumns are the statement columns that must be present in the
// header, in their documented order.
var RequiredColumns = []string{
	models.ColumnDate,
	models.ColumnDescription,
	models.ColumnAmount,
}

// ValidateSchema checks the header for the required columns. The returned
// MissingColumnsError names exactly the absent ones.
func ValidateSchema(header []string) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &parsererror.MissingColumnsError{Missing: missing, Found: header}
	}
	return nil
}

// Parse parses statement CSV data into transactions. Schema validation runs
// first and short-circuits the run; after that, rows that fail to parse are
// dropped without an error. Output preserves input row order.
func Parse(data []byte, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	header, err := common.ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if err := ValidateSchema(header); err != nil {
		logger.WithError(err).Error("Statement schema validation failed")
		return nil, err
	}

	rows, err := common.ReadRows[StatementRow](bytes.NewReader(data), logger)
	if err != nil {
		return nil, fmt.Errorf("error reading statement: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		tx, err := convertRow(row)
		if err != nil {
			// Row-level defects are dropped, not reported.
			logger.WithError(err).Debug("Dropping unparseable statement row")
			dropped++
			continue
		}
		transactions = append(transactions, tx)
	}

	logger.WithFields(
		logging.Field{Key: "count", Value: len(transactions)},
		logging.Field{Key: "dropped", Value: dropped},
	).Info("Parsed statement")
	return transactions, nil
}

// ParseReader parses statement CSV data from a reader.
func ParseReader(r io.Reader, logger logging.Logger) ([]models.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading statement input: %w", err)
	}
	return Parse(data, logger)
}

// ParseFile parses a statement CSV file.
func ParseFile(filePath string, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.WithField("file", filePath).Info("Parsing statement file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening statement file: %w", err)
	}
	return Parse(data, logger)
}

// convertRow turns a raw row into a Transaction, or an error when the row
// must be excluded from the working set.
func convertRow(row StatementRow) (models.Transaction, error) {
	description := strings.TrimSpace(row.Descricao)
	if description == "" {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: "extrato",
			Field:  models.ColumnDescription,
			Value:  row.Descricao,
			Err:    fmt.Errorf("empty description"),
		}
	}

	amount, err := models.ParseAmount(row.Valor)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: "extrato",
			Field:  models.ColumnAmount,
			Value:  row.Valor,
			Err:    err,
		}
	}

	date, _, err := dateutils.ParseDate(row.Data)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: "extrato",
			Field:  models.ColumnDate,
			Value:  row.Data,
			Err:    err,
		}
	}

	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
	}, nil
}
