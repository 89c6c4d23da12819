package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name: "Success with minimal required config",
			envVars: map[string]string{
				"API_BASE_URL": "https://api.example.com",
			},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"API_BASE_URL":          "https://api.example.com/v1",
				"API_TIMEOUT":           "30",
				"PLACEHOLDER_IMAGE_URL": "https://cdn.example.com/placeholder.jpg",
				"CART_FILE":             "/tmp/cart.json",
				"SESSION_FILE":          "/tmp/session",
				"LOG_LEVEL":             "debug",
				"LOG_FORMAT":            "json",
			},
			expectError: false,
		},
		{
			name:        "Error - missing base URL",
			envVars:     map[string]string{},
			expectError: true,
			errorMsg:    "API base URL is required",
		},
		{
			name: "Error - malformed base URL",
			envVars: map[string]string{
				"API_BASE_URL": "not a url",
			},
			expectError: true,
			errorMsg:    "invalid API base URL",
		},
		{
			name: "Error - zero timeout",
			envVars: map[string]string{
				"API_BASE_URL": "https://api.example.com",
				"API_TIMEOUT":  "0",
			},
			expectError: true,
			errorMsg:    "timeout must be at least 1 second",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"API_BASE_URL": "https://api.example.com",
				"LOG_LEVEL":    "invalid",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"API_BASE_URL": "https://api.example.com",
				"LOG_FORMAT":   "xml",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("API_BASE_URL", "https://api.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.API.Timeout)
	assert.Equal(t, defaultPlaceholderImage, cfg.API.PlaceholderImage)
	assert.Empty(t, cfg.Cart.File)
	assert.Empty(t, cfg.Session.File)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
}
