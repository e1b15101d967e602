package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerCapture(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("loaded file", F(FieldFile, "payments.yaml"))
	mock.WithError(errors.New("boom")).Error("failed")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, FieldFile, mock.Entries[0].Fields[0].Key)
	assert.EqualError(t, mock.Entries[1].Error, "boom")
	assert.True(t, mock.HasMessage("loaded file"))
	assert.False(t, mock.HasMessage("missing"))
}

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	// an unknown level falls back to info instead of failing
	logger = NewLogrusAdapter("chatty", "text")
	require.NotNil(t, logger)
	logger.WithField("key", "value").Info("still works")
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	base := logrus.New()
	base.SetLevel(logrus.WarnLevel)
	logger := NewLogrusAdapterFromLogger(base)
	require.NotNil(t, logger)
	logger.Warn("warned", F(FieldSPSVersion, "SPS-2022"))
}
