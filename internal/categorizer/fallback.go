package categorizer

import (
	"regexp"
	"strings"

	"fintrack/bankstmt/internal/models"
)

// creditFamily is a small keyword set identifying one kind of incoming
// money. Families are checked in order; the generic income indicators run
// only after every family has missed.
type creditFamily struct {
	category string
	keywords []string
}

var creditFamilies = []creditFamily{
	{models.CategorySalary, []string{"salary", "sal credit", "payroll", "wages", "stipend"}},
	{models.CategoryBonus, []string{"bonus", "incentive"}},
	{models.CategoryInvestments, []string{"dividend", "interest", "redemption", "maturity"}},
	{models.CategoryRefunds, []string{"refund", "reversal"}},
	{models.CategoryCashback, []string{"cashback", "cash back"}},
}

// creditIndicators mark a description as income-like without pinning it to
// a specific family.
var creditIndicators = []string{"credited", "neft cr", "imps", "received from", "deposit by"}

// matchCreditHeuristics checks the lowercased description against the
// credit keyword families, falling back to the generic Credits category
// when the description looks like income but no family matches.
func matchCreditHeuristics(lowered string) (string, bool) {
	for _, family := range creditFamilies {
		for _, keyword := range family.keywords {
			if strings.Contains(lowered, keyword) {
				return family.category, true
			}
		}
	}

	for _, indicator := range creditIndicators {
		if strings.Contains(lowered, indicator) {
			return models.CategoryCredits, true
		}
	}

	return "", false
}

// fallbackPattern pairs a compiled regex with the category it implies.
type fallbackPattern struct {
	re       *regexp.Regexp
	category string
}

// fallbackPatterns are tried in this fixed order after keyword rules and
// credit heuristics have missed. First match wins.
var fallbackPatterns = []fallbackPattern{
	{regexp.MustCompile(`restaurant|cafe|food|dining|pizza|burger|biryani|hotel`), models.CategoryFood},
	{regexp.MustCompile(`mall|store|retail|bazaar|shopping|purchase`), models.CategoryShopping},
	{regexp.MustCompile(`fuel|petrol|gas|transport|metro|railway|bus|taxi|cab|parking|toll`), models.CategoryTransportation},
	{regexp.MustCompile(`hospital|clinic|medical|doctor|diagnostic|dental`), models.CategoryHealthcare},
	{regexp.MustCompile(`electric|water|bill|utility|dth|postpaid|prepaid|insurance|emi`), models.CategoryBills},
	{regexp.MustCompile(`movie|cinema|theatre|game|music|concert`), models.CategoryEntertainment},
	{regexp.MustCompile(`grocery|supermarket|vegetable|fruit|kirana|provision`), models.CategoryGroceries},
}

func matchFallbackPatterns(lowered string) (string, bool) {
	for _, p := range fallbackPatterns {
		if p.re.MatchString(lowered) {
			return p.category, true
		}
	}
	return "", false
}
