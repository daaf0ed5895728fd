package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Validate(t *testing.T) {
	require.NoError(t, Defaults().Validate())

	s := Defaults()
	s.WindowDays = 0
	assert.NoError(t, s.Validate(), "a zero window is allowed")

	s = Settings{WindowDays: -1, LogLevel: "trace", LogFormat: "yaml"}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window_days must not be negative")
	assert.Contains(t, err.Error(), `invalid log_level "trace"`)
	assert.Contains(t, err.Error(), `invalid log_format "yaml"`)
}
