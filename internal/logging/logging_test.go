package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Debug("debug message")
	mock.Info("info message", Field{Key: "rows", Value: 3})
	mock.Warn("warn message")
	mock.Error("error message")

	require.Len(t, mock.Entries, 4)
	assert.True(t, mock.HasEntry("DEBUG", "debug message"))
	assert.True(t, mock.HasEntry("INFO", "info message"))
	assert.True(t, mock.HasEntry("WARN", "warn message"))
	assert.True(t, mock.HasEntry("ERROR", "error message"))
	assert.False(t, mock.HasEntry("INFO", "never logged"))

	require.Len(t, mock.Entries[1].Fields, 1)
	assert.Equal(t, "rows", mock.Entries[1].Fields[0].Key)
}

func TestMockLoggerWithAttachments(t *testing.T) {
	mock := &MockLogger{}
	derived := mock.WithError(errors.New("boom")).WithField("file", "a.csv").(*MockLogger)

	derived.Error("read failed")

	require.Len(t, derived.Entries, 1)
	assert.EqualError(t, derived.Entries[0].Error, "boom")
	require.Len(t, derived.Entries[0].Fields, 1)
	assert.Equal(t, "file", derived.Entries[0].Fields[0].Key)
}

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	// Invalid level falls back to info instead of failing.
	fallback := NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, fallback)

	// Derived loggers are independent values.
	derived := logger.WithField("component", "parser")
	assert.NotSame(t, logger, derived)
	derived.Info("message with fields", Field{Key: "n", Value: 1})
}

func TestDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := &MockLogger{}
	SetDefaultLogger(mock)
	assert.Same(t, Logger(mock), GetLogger())

	// nil is ignored
	SetDefaultLogger(nil)
	assert.Same(t, Logger(mock), GetLogger())
}
