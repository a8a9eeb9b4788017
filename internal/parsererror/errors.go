// Package parsererror defines the error taxonomy for statement parsing.
// File-level errors (header or required column not found) abort a whole
// parse; row-level errors are recorded per row and never abort.
package parsererror

import "fmt"

// HeaderNotFoundError reports that no row within the scan window contained
// the mapping's starter word. The file is assumed to be in the wrong
// format for the selected mapping.
type HeaderNotFoundError struct {
	StarterWord string
	RowsScanned int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("header row not found: no cell containing %q in the first %d rows",
		e.StarterWord, e.RowsScanned)
}

// ColumnNotFoundError reports that a required column configured on the
// field mapping could not be resolved against the header row.
type ColumnNotFoundError struct {
	Field      string
	ColumnName string
	Header     []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found: %s column %q not present in header %v",
		e.Field, e.ColumnName, e.Header)
}
