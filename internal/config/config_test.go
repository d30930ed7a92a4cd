package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{"Development defaults", Config{Env: "development", Port: "8000", DBPassword: "password"}, false},
		{"Missing port", Config{Env: "development", DBPassword: "password"}, true},
		{"Production with default password", Config{Env: "production", Port: "8000", DBPassword: "password"}, true},
		{"Production with empty password", Config{Env: "production", Port: "8000"}, true},
		{"Production hardened", Config{Env: "production", Port: "8000", DBPassword: "s3cure-pass", DBSSLMode: "require"}, false},
		{"Prod alias", Config{Env: "prod", Port: "8000", DBPassword: "s3cure-pass", DBSSLMode: "require"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
