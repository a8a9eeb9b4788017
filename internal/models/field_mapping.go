package models

import "time"

// FieldMapping describes the statement layout of one bank export: which
// header cell marks the header row and which columns carry each logical
// field. Exactly one of AmountColumn or the Withdrawal/Deposit pair is
// populated on a usable mapping.
type FieldMapping struct {
	ID                string    `json:"id" yaml:"id"`
	BankName          string    `json:"bank_name" yaml:"bank_name"`
	StarterWord       string    `json:"starter_word" yaml:"starter_word"`
	DateColumn        string    `json:"date_column" yaml:"date_column"`
	DescriptionColumn string    `json:"description_column" yaml:"description_column"`
	AmountColumn      string    `json:"amount_column,omitempty" yaml:"amount_column,omitempty"`
	WithdrawalColumn  string    `json:"withdrawal_column,omitempty" yaml:"withdrawal_column,omitempty"`
	DepositColumn     string    `json:"deposit_column,omitempty" yaml:"deposit_column,omitempty"`
	TypeColumn        string    `json:"type_column,omitempty" yaml:"type_column,omitempty"`
	IsDefault         bool      `json:"is_default" yaml:"is_default"`
	CreatedAt         time.Time `json:"created_at" yaml:"created_at"`
}

// UsesAmountColumn reports whether the mapping is in single-amount-column
// mode rather than separate withdrawal/deposit columns.
func (m FieldMapping) UsesAmountColumn() bool {
	return m.AmountColumn != ""
}

// Validate checks that the mapping carries the required column names and
// exactly one amount representation.
func (m FieldMapping) Validate() error {
	if m.StarterWord == "" {
		return &FieldMappingError{Field: "starter_word", Reason: "must not be empty"}
	}
	if m.DateColumn == "" {
		return &FieldMappingError{Field: "date_column", Reason: "must not be empty"}
	}
	if m.DescriptionColumn == "" {
		return &FieldMappingError{Field: "description_column", Reason: "must not be empty"}
	}
	hasAmount := m.AmountColumn != ""
	hasSplit := m.WithdrawalColumn != "" && m.DepositColumn != ""
	if hasAmount == hasSplit {
		return &FieldMappingError{
			Field:  "amount_column",
			Reason: "exactly one of amount_column or withdrawal_column+deposit_column must be set",
		}
	}
	return nil
}

// FieldMappingError reports an invalid field mapping definition.
type FieldMappingError struct {
	Field  string
	Reason string
}

func (e *FieldMappingError) Error() string {
	return "invalid field mapping: " + e.Field + " " + e.Reason
}
