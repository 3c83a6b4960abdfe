package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://127.0.0.1:0",
			Key:         "test-key",
			HTTPTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Path:    ":memory:",
			Timeout: 1 * time.Second,
		},
		UI:      defaultConfig().UI,
		Browser: defaultConfig().Browser,
		Logging: LoggingConfig{Level: "off"},
		Keys:    defaultConfig().Keys,
	}
}
