package models

import "strings"

// KeywordRule maps a lowercase keyword to a category name. Rules are kept
// as an ordered list because categorization is first-match-wins.
type KeywordRule struct {
	Keyword  string `json:"keyword" yaml:"keyword"`
	Category string `json:"category" yaml:"category"`
}

// NewKeywordRule normalizes the keyword to lowercase and trims whitespace.
func NewKeywordRule(keyword, category string) KeywordRule {
	return KeywordRule{
		Keyword:  strings.ToLower(strings.TrimSpace(keyword)),
		Category: category,
	}
}

// Matches reports whether the rule's keyword occurs in the already
// lowercased description.
func (r KeywordRule) Matches(loweredDescription string) bool {
	return r.Keyword != "" && strings.Contains(loweredDescription, r.Keyword)
}
