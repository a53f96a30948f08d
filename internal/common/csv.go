// Package common provides the CSV plumbing shared by the statement parser
// and the report writers.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"lrocha/extrato-csv/internal/logging"
	"lrocha/extrato-csv/internal/models"
)

// Delimiter is the CSV field delimiter used for both input and output.
// Configurable through config or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter used by all CSV reads and writes.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ReadRows unmarshals CSV data from a reader into a slice of row structs
// using their csv struct tags.
func ReadRows[TRow any](r io.Reader, logger logging.Logger) ([]TRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.Comma = Delimiter
		return reader
	})
	defer gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return csv.NewReader(in)
	})

	var rows []TRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse CSV data")
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}

	logger.WithField("count", len(rows)).Debug("Read CSV rows")
	return rows, nil
}

// ReadHeader reads just the header record from CSV data so the schema can be
// validated before any row is processed.
func ReadHeader(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	return header, nil
}

// WriteRows marshals a slice of row structs as CSV to the given writer.
func WriteRows[TRow any](rows []TRow, w io.Writer, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteRowsToFile writes a slice of row structs to a CSV file, creating the
// parent directory when needed.
func WriteRowsToFile[TRow any](rows []TRow, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteRows(rows, file, logger); err != nil {
		return err
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(rows)},
	).Info("Wrote CSV file")
	return nil
}
