// Package csvio is the file-format collaborator around the parsing core:
// it decodes an uploaded CSV into the raw rows the core consumes, and
// writes promoted transactions back out in a standardized format.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/models"

	"github.com/gocarina/gocsv"
)

// ReadRawRows decodes CSV data into raw rows without interpreting them.
// Rows may have varying field counts; the header locator deals with that.
func ReadRawRows(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV data: %w", err)
	}
	return rows, nil
}

// ReadRawRowsFile decodes a CSV file into raw rows.
func ReadRawRowsFile(path string, delimiter rune, logger logging.Logger) ([][]string, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.WithField("file", path).Info("Reading statement file")

	file, err := os.Open(path) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		return nil, fmt.Errorf("error opening statement file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadRawRows(file, delimiter)
	if err != nil {
		return nil, err
	}
	logger.WithField("rows", len(rows)).Debug("Read raw rows")
	return rows, nil
}

// WriteTransactionsCSV writes transactions to a CSV file in the
// standardized output format.
func WriteTransactionsCSV(transactions []models.Transaction, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(transactions)},
	).Info("Wrote transactions to CSV")
	return nil
}
