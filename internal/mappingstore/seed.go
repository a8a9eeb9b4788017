package mappingstore

import "fintrack/bankstmt/internal/models"

// Built-in field mappings for common bank statement exports. These are the
// read-only seed: user edits are stored as per-field overrides so a reset
// can always recover the originals.
var builtinFieldMappings = []models.FieldMapping{
	{
		ID:                "sbi",
		BankName:          "State Bank of India",
		StarterWord:       "Txn Date",
		DateColumn:        "Txn Date",
		DescriptionColumn: "Description",
		WithdrawalColumn:  "Debit",
		DepositColumn:     "Credit",
		IsDefault:         true,
	},
	{
		ID:                "hdfc",
		BankName:          "HDFC Bank",
		StarterWord:       "Narration",
		DateColumn:        "Date",
		DescriptionColumn: "Narration",
		WithdrawalColumn:  "Withdrawal Amt",
		DepositColumn:     "Deposit Amt",
		IsDefault:         true,
	},
	{
		ID:                "icici",
		BankName:          "ICICI Bank",
		StarterWord:       "Transaction Remarks",
		DateColumn:        "Transaction Date",
		DescriptionColumn: "Transaction Remarks",
		WithdrawalColumn:  "Withdrawal Amount",
		DepositColumn:     "Deposit Amount",
		IsDefault:         true,
	},
	{
		ID:                "axis",
		BankName:          "Axis Bank",
		StarterWord:       "Tran Date",
		DateColumn:        "Tran Date",
		DescriptionColumn: "Particulars",
		AmountColumn:      "Amount",
		TypeColumn:        "Dr/Cr",
		IsDefault:         true,
	},
	{
		ID:                "generic",
		BankName:          "Generic (signed amount)",
		StarterWord:       "Date",
		DateColumn:        "Date",
		DescriptionColumn: "Description",
		AmountColumn:      "Amount",
		IsDefault:         true,
	},
}

// Suggested keyword rules, in match-priority order. Once the user edits a
// rule the whole set is copied into user storage and this template is no
// longer consulted.
var suggestedKeywordRules = []models.KeywordRule{
	{Keyword: "zomato", Category: models.CategoryFood},
	{Keyword: "swiggy", Category: models.CategoryFood},
	{Keyword: "dominos", Category: models.CategoryFood},
	{Keyword: "mcdonald", Category: models.CategoryFood},
	{Keyword: "bigbasket", Category: models.CategoryGroceries},
	{Keyword: "blinkit", Category: models.CategoryGroceries},
	{Keyword: "zepto", Category: models.CategoryGroceries},
	{Keyword: "dmart", Category: models.CategoryGroceries},
	{Keyword: "amazon", Category: models.CategoryShopping},
	{Keyword: "flipkart", Category: models.CategoryShopping},
	{Keyword: "myntra", Category: models.CategoryShopping},
	{Keyword: "uber", Category: models.CategoryTransportation},
	{Keyword: "ola", Category: models.CategoryTransportation},
	{Keyword: "rapido", Category: models.CategoryTransportation},
	{Keyword: "irctc", Category: models.CategoryTransportation},
	{Keyword: "netflix", Category: models.CategoryEntertainment},
	{Keyword: "spotify", Category: models.CategoryEntertainment},
	{Keyword: "hotstar", Category: models.CategoryEntertainment},
	{Keyword: "bookmyshow", Category: models.CategoryEntertainment},
	{Keyword: "electricity", Category: models.CategoryBills},
	{Keyword: "recharge", Category: models.CategoryBills},
	{Keyword: "airtel", Category: models.CategoryBills},
	{Keyword: "jio", Category: models.CategoryBills},
	{Keyword: "broadband", Category: models.CategoryBills},
	{Keyword: "apollo", Category: models.CategoryHealthcare},
	{Keyword: "pharmacy", Category: models.CategoryHealthcare},
	{Keyword: "medplus", Category: models.CategoryHealthcare},
	{Keyword: "salary", Category: models.CategorySalary},
	{Keyword: "rent", Category: models.CategoryBills},
}

// SeedFieldMappings returns a copy of the built-in field mappings.
func SeedFieldMappings() []models.FieldMapping {
	out := make([]models.FieldMapping, len(builtinFieldMappings))
	copy(out, builtinFieldMappings)
	return out
}

// SeedKeywordRules returns a copy of the suggested keyword rules.
func SeedKeywordRules() []models.KeywordRule {
	out := make([]models.KeywordRule, len(suggestedKeywordRules))
	copy(out, suggestedKeywordRules)
	return out
}

func seedMappingByID(id string) (models.FieldMapping, bool) {
	for _, m := range builtinFieldMappings {
		if m.ID == id {
			return m, true
		}
	}
	return models.FieldMapping{}, false
}
