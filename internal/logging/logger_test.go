package logging_test

import (
	"testing"

	"inventory-service/internal/config"
	"inventory-service/internal/logging"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToInfo(t *testing.T) {
	logger := logging.New(config.Config{})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewParsesLevel(t *testing.T) {
	logger := logging.New(config.Config{LogLevel: "debug"})
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewIgnoresBogusLevel(t *testing.T) {
	logger := logging.New(config.Config{LogLevel: "loud"})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewConsoleFormat(t *testing.T) {
	// Console output only changes the writer; construction must not fail.
	logger := logging.New(config.Config{LogFormat: "console", LogLevel: "warn"})
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
