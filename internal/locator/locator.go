// Package locator finds the header row of a raw statement dump and
// resolves the field mapping's column names to indices. Real bank exports
// put account metadata above the table, so the header is located
// heuristically by the mapping's starter word rather than assumed at row
// zero.
package locator

import (
	"strings"

	"fintrack/bankstmt/internal/models"
	"fintrack/bankstmt/internal/parsererror"
)

// DefaultScanWindow bounds how many rows are inspected when looking for
// the header row.
const DefaultScanWindow = 25

// Columns holds the resolved column indices for one field mapping. An
// index of -1 means the column is not configured on the mapping.
type Columns struct {
	Date        int
	Description int
	Amount      int
	Withdrawal  int
	Deposit     int
	Type        int
}

// LocateHeader scans rows from the top and returns the index of the first
// row with a cell containing starterWord, case-insensitively, as a
// substring. scanWindow bounds the scan; zero or negative means
// DefaultScanWindow. A HeaderNotFoundError is file-level fatal.
func LocateHeader(rows [][]string, starterWord string, scanWindow int) (int, error) {
	if scanWindow <= 0 {
		scanWindow = DefaultScanWindow
	}
	lowered := strings.ToLower(starterWord)

	limit := len(rows)
	if limit > scanWindow {
		limit = scanWindow
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.Contains(strings.ToLower(cell), lowered) {
				return i, nil
			}
		}
	}

	return 0, &parsererror.HeaderNotFoundError{StarterWord: starterWord, RowsScanned: limit}
}

// ResolveColumns maps each logical field of the mapping to a column index
// in the header row. Required columns are date, description, and the
// mapping's amount representation; a missing one yields a
// ColumnNotFoundError naming the column.
func ResolveColumns(header []string, mapping models.FieldMapping) (Columns, error) {
	cols := Columns{Date: -1, Description: -1, Amount: -1, Withdrawal: -1, Deposit: -1, Type: -1}

	required := func(field, name string) (int, error) {
		idx := findColumn(header, name)
		if idx < 0 {
			return -1, &parsererror.ColumnNotFoundError{Field: field, ColumnName: name, Header: header}
		}
		return idx, nil
	}

	var err error
	if cols.Date, err = required("date", mapping.DateColumn); err != nil {
		return Columns{}, err
	}
	if cols.Description, err = required("description", mapping.DescriptionColumn); err != nil {
		return Columns{}, err
	}

	if mapping.UsesAmountColumn() {
		if cols.Amount, err = required("amount", mapping.AmountColumn); err != nil {
			return Columns{}, err
		}
	} else {
		if cols.Withdrawal, err = required("withdrawal", mapping.WithdrawalColumn); err != nil {
			return Columns{}, err
		}
		if cols.Deposit, err = required("deposit", mapping.DepositColumn); err != nil {
			return Columns{}, err
		}
	}

	// Optional explicit debit/credit indicator column.
	if mapping.TypeColumn != "" {
		cols.Type = findColumn(header, mapping.TypeColumn)
	}

	return cols, nil
}

// findColumn matches a configured column name against the header cells,
// case-insensitively and tolerant of partial containment in either
// direction, to survive minor header text variation across exports.
func findColumn(header []string, name string) int {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return -1
	}
	for i, cell := range header {
		cellLowered := strings.ToLower(strings.TrimSpace(cell))
		if cellLowered == "" {
			continue
		}
		if strings.Contains(cellLowered, lowered) || strings.Contains(lowered, cellLowered) {
			return i
		}
	}
	return -1
}
