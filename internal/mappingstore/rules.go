package mappingstore

import (
	"fmt"
	"strings"

	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/models"
)

// ActiveRules returns the keyword rules in match-priority order: the
// user-owned set when one has been initialized, otherwise a copy of the
// suggested seed. It never fails.
func (s *MappingStore) ActiveRules() []models.KeywordRule {
	var rules []models.KeywordRule
	s.loadInto(keyCategoryRules, &rules)
	if rules == nil {
		return SeedKeywordRules()
	}
	return rules
}

// AddOrUpdateRule sets the category for a keyword, appending a new rule
// when the keyword is unknown. Keywords are unique within the set; the
// first write of any rule copies the seed into user storage.
func (s *MappingStore) AddOrUpdateRule(keyword, category string) error {
	rule := models.NewKeywordRule(keyword, category)
	if rule.Keyword == "" {
		return fmt.Errorf("keyword must not be empty")
	}

	rules := s.ActiveRules()
	updated := false
	for i := range rules {
		if rules[i].Keyword == rule.Keyword {
			rules[i].Category = rule.Category
			updated = true
			break
		}
	}
	if !updated {
		rules = append(rules, rule)
	}

	if err := s.marshalAndSet(keyCategoryRules, rules); err != nil {
		return err
	}
	s.logger.WithFields(
		logging.Field{Key: "keyword", Value: rule.Keyword},
		logging.Field{Key: "category", Value: rule.Category},
	).Debug("Saved keyword rule")
	s.notify()
	return nil
}

// DeleteRule removes the rule for a keyword. Deleting an unknown keyword
// is a no-op that still materializes the user-owned set.
func (s *MappingStore) DeleteRule(keyword string) error {
	key := strings.ToLower(strings.TrimSpace(keyword))
	rules := s.ActiveRules()
	kept := rules[:0]
	for _, r := range rules {
		if r.Keyword != key {
			kept = append(kept, r)
		}
	}

	if err := s.marshalAndSet(keyCategoryRules, kept); err != nil {
		return err
	}
	s.notify()
	return nil
}

// InitializeUserRules seeds the user-owned rule set from the suggested
// defaults, only when no user set exists yet. Re-running it when rules are
// already stored does not alter them.
func (s *MappingStore) InitializeUserRules() error {
	if _, ok, err := s.kv.Get(keyCategoryRules); err != nil {
		return fmt.Errorf("error checking stored rules: %w", err)
	} else if ok {
		return nil
	}
	if err := s.marshalAndSet(keyCategoryRules, SeedKeywordRules()); err != nil {
		return err
	}
	s.notify()
	return nil
}

// ResetAllRules discards the user-owned rule set; the next read returns
// the suggested seed.
func (s *MappingStore) ResetAllRules() error {
	if err := s.kv.Delete(keyCategoryRules); err != nil {
		return fmt.Errorf("error clearing keyword rules: %w", err)
	}
	s.notify()
	return nil
}

// Subscribe registers fn to be called after every mutation of the keyword
// rule set. Callers use this to recompute categorization-derived views.
func (s *MappingStore) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *MappingStore) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
