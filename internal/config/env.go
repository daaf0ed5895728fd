package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CONTACTBOOK_WINDOW_DAYS.
const EnvPrefix = "CONTACTBOOK"

// applyEnv overrides s with any CONTACTBOOK_* variable that is set.
func applyEnv(s *Settings) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if v.IsSet("window_days") {
		raw := strings.TrimSpace(v.GetString("window_days"))
		days, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s_WINDOW_DAYS %q: %w", EnvPrefix, raw, err)
		}
		s.WindowDays = days
	}
	if v.IsSet("log_level") {
		s.LogLevel = strings.ToLower(v.GetString("log_level"))
	}
	if v.IsSet("log_format") {
		s.LogFormat = strings.ToLower(v.GetString("log_format"))
	}
	if v.IsSet("prompt") {
		s.Prompt = v.GetString("prompt")
	}
	if v.IsSet("greeting") {
		s.Greeting = v.GetString("greeting")
	}
	return nil
}
