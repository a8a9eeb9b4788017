package models

import "github.com/shopspring/decimal"

// ParsedTransaction is the row-level result of statement parsing, prior to
// promotion into a Transaction. Failed rows keep the raw source row so the
// caller can surface them for review and editing.
type ParsedTransaction struct {
	Date        string          `json:"date" yaml:"date"`
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Type        string          `json:"type" yaml:"type"`
	OriginalRow []string        `json:"original_row" yaml:"original_row"`
	Success     bool            `json:"success" yaml:"success"`
	Error       string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed builds a ParsedTransaction recording a row-level failure.
func Failed(row []string, reason string) ParsedTransaction {
	return ParsedTransaction{
		OriginalRow: row,
		Success:     false,
		Error:       reason,
	}
}
