package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the durable domain entity produced by statement import,
// manual entry or a remote load. Amount is always non-negative; the
// direction is carried solely by Type.
type Transaction struct {
	ID                  string          `json:"id" yaml:"id" csv:"ID"`
	Date                string          `json:"date" yaml:"date" csv:"Date"`
	Description         string          `json:"description" yaml:"description" csv:"Description"`
	Amount              decimal.Decimal `json:"amount" yaml:"amount" csv:"Amount"`
	Type                string          `json:"type" yaml:"type" csv:"Type"`
	Category            string          `json:"category" yaml:"category" csv:"Category"`
	OriginalDescription string          `json:"original_description,omitempty" yaml:"original_description,omitempty" csv:"OriginalDescription"`
	IsManual            bool            `json:"is_manual" yaml:"is_manual" csv:"IsManual"`
	Source              string          `json:"source" yaml:"source" csv:"Source"`
}

// NewTransaction creates a transaction with a fresh unique id.
func NewTransaction(date, description string, amount decimal.Decimal, txType string) Transaction {
	return Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Description: description,
		Amount:      amount.Abs(),
		Type:        txType,
	}
}

// IsDebit returns true if the transaction is a debit.
func (t Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// IsCredit returns true if the transaction is a credit.
func (t Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// SignedAmount returns the amount with the direction applied: negative for
// debits, positive for credits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}
