// Package mappingstore persists field-mapping profiles and keyword rules,
// layering user customizations over built-in defaults. Built-in field
// mappings are never overwritten destructively: user edits are stored as
// per-field diffs against the seed so "reset to defaults" always works.
package mappingstore

import (
	"fmt"
	"sync"
	"time"

	"fintrack/bankstmt/internal/kvstore"
	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Storage keys within the key-value store.
const (
	keyFieldMappingOverrides = "field_mapping_overrides"
	keyCustomFieldMappings   = "custom_field_mappings"
	keyCategoryRules         = "category_rules"
)

// DefaultMappingID is the designated fallback mapping when no explicit
// selection exists.
const DefaultMappingID = "generic"

// MappingStore loads and saves field mappings and keyword rules through an
// injected key-value store. Malformed persisted data is logged and treated
// as absent; load operations never fail.
type MappingStore struct {
	kv               kvstore.Store
	logger           logging.Logger
	defaultMappingID string

	mu          sync.Mutex
	subscribers []func()
}

// New creates a MappingStore over the given key-value store. A nil logger
// falls back to the default logger.
func New(kv kvstore.Store, logger logging.Logger) *MappingStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &MappingStore{
		kv:               kv,
		logger:           logger,
		defaultMappingID: DefaultMappingID,
	}
}

// SetDefaultMappingID changes the designated fallback mapping id.
func (s *MappingStore) SetDefaultMappingID(id string) {
	if id != "" {
		s.defaultMappingID = id
	}
}

// fieldOverride is the per-field diff of a built-in mapping against its
// seed. Only fields the user changed are present.
type fieldOverride map[string]string

// LoadFieldMappings returns the built-in mappings with any saved per-field
// overrides applied, followed by user-created custom mappings. It never
// fails: absent or corrupt storage yields the unmodified built-in set.
func (s *MappingStore) LoadFieldMappings() []models.FieldMapping {
	mappings := SeedFieldMappings()

	overrides := s.loadOverrides()
	for i := range mappings {
		if ov, ok := overrides[mappings[i].ID]; ok {
			applyOverride(&mappings[i], ov)
		}
	}

	return append(mappings, s.loadCustomMappings()...)
}

// SaveFieldMappings persists the given mappings. Built-ins are reduced to
// field-level diffs against the seed; an unchanged built-in stores
// nothing. Custom mappings are persisted whole.
func (s *MappingStore) SaveFieldMappings(mappings []models.FieldMapping) error {
	overrides := make(map[string]fieldOverride)
	var customs []models.FieldMapping

	for _, m := range mappings {
		seed, isSeed := seedMappingByID(m.ID)
		if !isSeed {
			customs = append(customs, m)
			continue
		}
		diff := diffAgainstSeed(seed, m)
		if len(diff) > 0 {
			overrides[m.ID] = diff
		}
	}

	if len(overrides) == 0 {
		if err := s.kv.Delete(keyFieldMappingOverrides); err != nil {
			return fmt.Errorf("error clearing field mapping overrides: %w", err)
		}
	} else if err := s.marshalAndSet(keyFieldMappingOverrides, overrides); err != nil {
		return err
	}

	if len(customs) == 0 {
		if err := s.kv.Delete(keyCustomFieldMappings); err != nil {
			return fmt.Errorf("error clearing custom field mappings: %w", err)
		}
		return nil
	}
	return s.marshalAndSet(keyCustomFieldMappings, customs)
}

// DefaultMapping returns the designated fallback mapping, or the first
// available mapping when the designated one is absent.
func (s *MappingStore) DefaultMapping() models.FieldMapping {
	mappings := s.LoadFieldMappings()
	for _, m := range mappings {
		if m.ID == s.defaultMappingID {
			return m
		}
	}
	return mappings[0]
}

// MappingByID returns the mapping with the given id.
func (s *MappingStore) MappingByID(id string) (models.FieldMapping, bool) {
	for _, m := range s.LoadFieldMappings() {
		if m.ID == id {
			return m, true
		}
	}
	return models.FieldMapping{}, false
}

// CreateOptions supplies the amount representation for a new mapping:
// either AmountColumn, or the WithdrawalColumn/DepositColumn pair.
type CreateOptions struct {
	AmountColumn     string
	WithdrawalColumn string
	DepositColumn    string
	TypeColumn       string
}

// CreateFieldMapping constructs, persists and returns a new custom mapping
// with a freshly generated id and the current timestamp.
func (s *MappingStore) CreateFieldMapping(bankName, starterWord, dateColumn, descriptionColumn string, opts CreateOptions) (models.FieldMapping, error) {
	m := models.FieldMapping{
		ID:                uuid.New().String(),
		BankName:          bankName,
		StarterWord:       starterWord,
		DateColumn:        dateColumn,
		DescriptionColumn: descriptionColumn,
		AmountColumn:      opts.AmountColumn,
		WithdrawalColumn:  opts.WithdrawalColumn,
		DepositColumn:     opts.DepositColumn,
		TypeColumn:        opts.TypeColumn,
		IsDefault:         false,
		CreatedAt:         time.Now(),
	}
	if err := m.Validate(); err != nil {
		return models.FieldMapping{}, err
	}

	customs := append(s.loadCustomMappings(), m)
	if err := s.marshalAndSet(keyCustomFieldMappings, customs); err != nil {
		return models.FieldMapping{}, err
	}

	s.logger.WithFields(
		logging.Field{Key: "id", Value: m.ID},
		logging.Field{Key: "bank", Value: m.BankName},
	).Info("Created custom field mapping")
	return m, nil
}

// ResetFieldMappings discards all saved overrides and custom mappings,
// reverting to the built-in seed.
func (s *MappingStore) ResetFieldMappings() error {
	if err := s.kv.Delete(keyFieldMappingOverrides); err != nil {
		return fmt.Errorf("error clearing field mapping overrides: %w", err)
	}
	if err := s.kv.Delete(keyCustomFieldMappings); err != nil {
		return fmt.Errorf("error clearing custom field mappings: %w", err)
	}
	return nil
}

func (s *MappingStore) loadOverrides() map[string]fieldOverride {
	overrides := make(map[string]fieldOverride)
	s.loadInto(keyFieldMappingOverrides, &overrides)
	return overrides
}

func (s *MappingStore) loadCustomMappings() []models.FieldMapping {
	var customs []models.FieldMapping
	s.loadInto(keyCustomFieldMappings, &customs)
	return customs
}

// loadInto reads and unmarshals a stored blob into out. Absent keys,
// backend errors and malformed blobs all leave out untouched; they are
// logged and treated as absent data.
func (s *MappingStore) loadInto(key string, out interface{}) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to read stored data, falling back to defaults")
		return
	}
	if !ok {
		return
	}
	if err := yaml.Unmarshal([]byte(raw), out); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Discarding malformed stored data")
	}
}

func (s *MappingStore) marshalAndSet(key string, value interface{}) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", key, err)
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("error storing %s: %w", key, err)
	}
	return nil
}

// Override field names. These are the user-editable fields of a mapping;
// ID, IsDefault and CreatedAt are never part of a diff.
const (
	fieldBankName          = "bank_name"
	fieldStarterWord       = "starter_word"
	fieldDateColumn        = "date_column"
	fieldDescriptionColumn = "description_column"
	fieldAmountColumn      = "amount_column"
	fieldWithdrawalColumn  = "withdrawal_column"
	fieldDepositColumn     = "deposit_column"
	fieldTypeColumn        = "type_column"
)

func diffAgainstSeed(seed, edited models.FieldMapping) fieldOverride {
	diff := make(fieldOverride)
	add := func(field, seedVal, editedVal string) {
		if seedVal != editedVal {
			diff[field] = editedVal
		}
	}
	add(fieldBankName, seed.BankName, edited.BankName)
	add(fieldStarterWord, seed.StarterWord, edited.StarterWord)
	add(fieldDateColumn, seed.DateColumn, edited.DateColumn)
	add(fieldDescriptionColumn, seed.DescriptionColumn, edited.DescriptionColumn)
	add(fieldAmountColumn, seed.AmountColumn, edited.AmountColumn)
	add(fieldWithdrawalColumn, seed.WithdrawalColumn, edited.WithdrawalColumn)
	add(fieldDepositColumn, seed.DepositColumn, edited.DepositColumn)
	add(fieldTypeColumn, seed.TypeColumn, edited.TypeColumn)
	return diff
}

func applyOverride(m *models.FieldMapping, ov fieldOverride) {
	for field, value := range ov {
		switch field {
		case fieldBankName:
			m.BankName = value
		case fieldStarterWord:
			m.StarterWord = value
		case fieldDateColumn:
			m.DateColumn = value
		case fieldDescriptionColumn:
			m.DescriptionColumn = value
		case fieldAmountColumn:
			m.AmountColumn = value
		case fieldWithdrawalColumn:
			m.WithdrawalColumn = value
		case fieldDepositColumn:
			m.DepositColumn = value
		case fieldTypeColumn:
			m.TypeColumn = value
		}
	}
}
