package models

// Transaction directions
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// Transaction sources
const (
	SourceCSV    = "csv"
	SourceExcel  = "excel"
	SourceManual = "manual"
)

// Categories assigned by the fallback chain
const (
	CategoryMiscellaneous  = "Miscellaneous"
	CategoryCredits        = "Credits"
	CategorySalary         = "Salary"
	CategoryBonus          = "Bonus"
	CategoryInvestments    = "Investment Returns"
	CategoryRefunds        = "Refunds"
	CategoryCashback       = "Cashback"
	CategoryFood           = "Food & Dining"
	CategoryShopping       = "Shopping"
	CategoryTransportation = "Transportation"
	CategoryHealthcare     = "Healthcare"
	CategoryBills          = "Bills & Utilities"
	CategoryEntertainment  = "Entertainment"
	CategoryGroceries      = "Groceries"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
)
