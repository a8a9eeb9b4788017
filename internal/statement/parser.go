// Package statement drives the header locator over a raw statement dump
// and converts each data row into a parsed transaction, tolerating
// row-level errors. Real bank exports routinely contain footer rows,
// subtotals and stray blanks after the data region, so a bad row is
// recorded and skipped rather than aborting the file.
package statement

import (
	"fmt"
	"strings"

	"fintrack/bankstmt/internal/dateutils"
	"fintrack/bankstmt/internal/locator"
	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryAssigner assigns a category to a transaction description. The
// categorizer package implements this.
type CategoryAssigner interface {
	Categorize(description string) string
}

// Result is the outcome of parsing one statement file. ParsedData holds
// every data row, failed ones included, for caller-side review;
// Transactions is the subset promoted to durable records; Headers is the
// resolved header row's raw text for diagnostics.
type Result struct {
	Transactions []models.Transaction
	ParsedData   []models.ParsedTransaction
	Headers      []string
}

// Parser converts raw tabular rows into transactions using a field
// mapping.
type Parser struct {
	categorizer CategoryAssigner
	logger      logging.Logger
	scanWindow  int
	source      string
}

// New creates a Parser. categorizer may be nil when the caller wants to
// assign categories itself; a nil logger falls back to the default.
func New(categorizer CategoryAssigner, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{
		categorizer: categorizer,
		logger:      logger,
		scanWindow:  locator.DefaultScanWindow,
		source:      models.SourceCSV,
	}
}

// SetScanWindow bounds the header search. Zero or negative restores the
// default.
func (p *Parser) SetScanWindow(rows int) {
	if rows <= 0 {
		rows = locator.DefaultScanWindow
	}
	p.scanWindow = rows
}

// SetSource sets the source recorded on promoted transactions, e.g.
// models.SourceExcel for spreadsheet uploads. Default is models.SourceCSV.
func (p *Parser) SetSource(source string) {
	if source != "" {
		p.source = source
	}
}

// Parse locates the header row via the mapping's starter word, resolves
// the mapping's columns, then extracts every following data row. Header or
// required-column resolution failures are file-level and returned as an
// error; row-level failures are recorded on the ParsedTransaction and
// never abort the parse.
func (p *Parser) Parse(rows [][]string, mapping models.FieldMapping) (*Result, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}

	headerIdx, err := locator.LocateHeader(rows, mapping.StarterWord, p.scanWindow)
	if err != nil {
		return nil, err
	}
	header := rows[headerIdx]

	cols, err := locator.ResolveColumns(header, mapping)
	if err != nil {
		return nil, err
	}

	p.logger.WithFields(
		logging.Field{Key: "mapping", Value: mapping.ID},
		logging.Field{Key: "headerRow", Value: headerIdx},
	).Debug("Resolved statement header")

	result := &Result{Headers: header}
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		parsed := p.extractRow(row, mapping, cols)
		result.ParsedData = append(result.ParsedData, parsed)
		if !parsed.Success {
			p.logger.WithFields(
				logging.Field{Key: "row", Value: i},
				logging.Field{Key: "error", Value: parsed.Error},
			).Debug("Skipping unparseable row")
			continue
		}

		tx := models.NewTransaction(parsed.Date, parsed.Description, parsed.Amount, parsed.Type)
		tx.OriginalDescription = parsed.Description
		tx.IsManual = false
		tx.Source = p.source
		if p.categorizer != nil {
			tx.Category = p.categorizer.Categorize(parsed.Description)
		}
		result.Transactions = append(result.Transactions, tx)
	}

	p.logger.WithFields(
		logging.Field{Key: "rows", Value: len(result.ParsedData)},
		logging.Field{Key: "transactions", Value: len(result.Transactions)},
	).Info("Parsed statement")
	return result, nil
}

// extractRow converts one data row. Any failure is recorded on the
// returned ParsedTransaction; a row is either fully extracted or failed,
// never partial.
func (p *Parser) extractRow(row []string, mapping models.FieldMapping, cols locator.Columns) models.ParsedTransaction {
	rawDate := cell(row, cols.Date)
	date, _, err := dateutils.ParseDate(rawDate)
	if err != nil {
		return models.Failed(row, "invalid date")
	}

	description := strings.TrimSpace(cell(row, cols.Description))
	if description == "" {
		return models.Failed(row, "empty description")
	}

	var amount decimal.Decimal
	var txType string
	if mapping.UsesAmountColumn() {
		amount, txType, err = resolveAmountColumn(row, cols)
	} else {
		amount, txType, err = resolveSplitColumns(row, cols)
	}
	if err != nil {
		return models.Failed(row, err.Error())
	}

	return models.ParsedTransaction{
		Date:        dateutils.ToISODate(date),
		Description: description,
		Amount:      amount,
		Type:        txType,
		OriginalRow: row,
		Success:     true,
	}
}

// resolveAmountColumn reads the single amount cell. An explicit type
// column decides the direction when configured; otherwise the sign does,
// and the stored amount is always the absolute value.
func resolveAmountColumn(row []string, cols locator.Columns) (decimal.Decimal, string, error) {
	raw := cell(row, cols.Amount)
	amount, err := parseAmount(raw)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("invalid amount %q", raw)
	}

	if cols.Type >= 0 {
		return amount.Abs(), parseTypeIndicator(cell(row, cols.Type)), nil
	}

	if amount.IsNegative() {
		return amount.Abs(), models.TypeDebit, nil
	}
	return amount, models.TypeCredit, nil
}

// resolveSplitColumns reads the withdrawal and deposit cells. Exactly one
// is expected to hold a non-zero value; anything else is a row failure,
// never a silent default.
func resolveSplitColumns(row []string, cols locator.Columns) (decimal.Decimal, string, error) {
	withdrawal, hasWithdrawal := parsePopulatedAmount(cell(row, cols.Withdrawal))
	deposit, hasDeposit := parsePopulatedAmount(cell(row, cols.Deposit))

	switch {
	case hasWithdrawal && hasDeposit:
		return decimal.Zero, "", fmt.Errorf("ambiguous row: both withdrawal and deposit are populated")
	case hasWithdrawal:
		return withdrawal.Abs(), models.TypeDebit, nil
	case hasDeposit:
		return deposit.Abs(), models.TypeCredit, nil
	default:
		return decimal.Zero, "", fmt.Errorf("neither withdrawal nor deposit is populated")
	}
}

// parseTypeIndicator maps an explicit debit/credit indicator cell to a
// transaction type, defaulting to debit on ambiguity.
func parseTypeIndicator(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cr", "c", "credit", "deposit":
		return models.TypeCredit
	default:
		return models.TypeDebit
	}
}

// amountCleaner strips currency symbols, thousands separators and
// whitespace before decimal parsing.
var amountCleaner = strings.NewReplacer(",", "", "₹", "", "$", "", "€", "", " ", "", " ", "")

func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := amountCleaner.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(cleaned)
}

// parsePopulatedAmount reports whether a withdrawal/deposit cell holds a
// usable non-zero value. Placeholders like "-" and unparseable text count
// as unpopulated.
func parsePopulatedAmount(raw string) (decimal.Decimal, bool) {
	amount, err := parseAmount(raw)
	if err != nil || amount.IsZero() {
		return decimal.Zero, false
	}
	return amount, true
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
