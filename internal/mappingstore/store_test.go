package mappingstore

import (
	"testing"

	"fintrack/bankstmt/internal/kvstore"
	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*MappingStore, *kvstore.MemoryStore) {
	kv := kvstore.NewMemoryStore()
	return New(kv, &logging.MockLogger{}), kv
}

func TestLoadFieldMappings_EmptyStorageYieldsSeed(t *testing.T) {
	store, _ := newTestStore()

	mappings := store.LoadFieldMappings()
	require.Len(t, mappings, len(SeedFieldMappings()))
	assert.Equal(t, "sbi", mappings[0].ID)
	assert.True(t, mappings[0].IsDefault)
}

func TestLoadFieldMappings_CorruptStorageYieldsSeed(t *testing.T) {
	store, kv := newTestStore()
	require.NoError(t, kv.Set(keyFieldMappingOverrides, "{not: valid: yaml"))
	require.NoError(t, kv.Set(keyCustomFieldMappings, "also garbage["))

	mappings := store.LoadFieldMappings()
	assert.Equal(t, SeedFieldMappings(), mappings)
}

func TestSaveFieldMappings_BuiltinRoundTrip(t *testing.T) {
	store, kv := newTestStore()

	mappings := store.LoadFieldMappings()
	mappings[0].StarterWord = "Value Date"
	require.NoError(t, store.SaveFieldMappings(mappings))

	reloaded := store.LoadFieldMappings()
	assert.Equal(t, "Value Date", reloaded[0].StarterWord)
	// Untouched fields keep their seed values.
	assert.Equal(t, "State Bank of India", reloaded[0].BankName)

	// Only the diff is stored, never the whole built-in record.
	raw, ok, err := kv.Get(keyFieldMappingOverrides)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, "starter_word")
	assert.NotContains(t, raw, "State Bank of India")
}

func TestSaveFieldMappings_UnchangedBuiltinStoresNothing(t *testing.T) {
	store, kv := newTestStore()

	require.NoError(t, store.SaveFieldMappings(store.LoadFieldMappings()))

	_, ok, err := kv.Get(keyFieldMappingOverrides)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResetFieldMappings_RestoresSeedExactly(t *testing.T) {
	store, _ := newTestStore()

	mappings := store.LoadFieldMappings()
	mappings[1].DateColumn = "Booking Date"
	require.NoError(t, store.SaveFieldMappings(mappings))
	_, err := store.CreateFieldMapping("My Bank", "Posted", "Posted", "Detail",
		CreateOptions{AmountColumn: "Value"})
	require.NoError(t, err)

	require.NoError(t, store.ResetFieldMappings())
	assert.Equal(t, SeedFieldMappings(), store.LoadFieldMappings())
}

func TestCreateFieldMapping(t *testing.T) {
	store, _ := newTestStore()

	m, err := store.CreateFieldMapping("My Bank", "Posted Date", "Posted Date", "Details",
		CreateOptions{WithdrawalColumn: "Out", DepositColumn: "In"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.IsDefault)
	assert.False(t, m.CreatedAt.IsZero())

	mappings := store.LoadFieldMappings()
	last := mappings[len(mappings)-1]
	assert.Equal(t, m.ID, last.ID)
	assert.Equal(t, "My Bank", last.BankName)

	// Two customs must not share an id.
	m2, err := store.CreateFieldMapping("Other Bank", "Date", "Date", "Narration",
		CreateOptions{AmountColumn: "Amount"})
	require.NoError(t, err)
	assert.NotEqual(t, m.ID, m2.ID)
}

func TestCreateFieldMapping_RejectsAmbiguousAmountMode(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.CreateFieldMapping("My Bank", "Date", "Date", "Details", CreateOptions{})
	assert.Error(t, err)

	_, err = store.CreateFieldMapping("My Bank", "Date", "Date", "Details", CreateOptions{
		AmountColumn:     "Amount",
		WithdrawalColumn: "Out",
		DepositColumn:    "In",
	})
	assert.Error(t, err)
}

func TestDefaultMapping(t *testing.T) {
	store, _ := newTestStore()

	assert.Equal(t, DefaultMappingID, store.DefaultMapping().ID)

	store.SetDefaultMappingID("hdfc")
	assert.Equal(t, "hdfc", store.DefaultMapping().ID)

	// Unknown designated id falls back to the first available mapping.
	store.SetDefaultMappingID("no-such-bank")
	assert.Equal(t, "sbi", store.DefaultMapping().ID)
}

func TestMappingByID(t *testing.T) {
	store, _ := newTestStore()

	m, ok := store.MappingByID("axis")
	require.True(t, ok)
	assert.Equal(t, "Axis Bank", m.BankName)

	_, ok = store.MappingByID("nope")
	assert.False(t, ok)
}

func TestSeedCopiesAreIndependent(t *testing.T) {
	a := SeedFieldMappings()
	a[0].BankName = "mutated"
	assert.Equal(t, "State Bank of India", SeedFieldMappings()[0].BankName)

	r := SeedKeywordRules()
	r[0].Category = "mutated"
	assert.Equal(t, models.CategoryFood, SeedKeywordRules()[0].Category)
}
