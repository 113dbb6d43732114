package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "development defaults pass",
			cfg:     Config{Port: "8460", JWTSecret: "dev-secret", Env: "development"},
			wantErr: false,
		},
		{
			name:    "missing port",
			cfg:     Config{JWTSecret: "dev-secret"},
			wantErr: true,
		},
		{
			name:    "missing secret",
			cfg:     Config{Port: "8460"},
			wantErr: true,
		},
		{
			name: "production rejects default secret",
			cfg: Config{
				Port:      "8460",
				JWTSecret: "your-secret-key-change-in-production",
				Env:       "production",
			},
			wantErr: true,
		},
		{
			name: "production rejects short secret",
			cfg: Config{
				Port:      "8460",
				JWTSecret: "short",
				Env:       "production",
			},
			wantErr: true,
		},
		{
			name: "production rejects weak db password",
			cfg: Config{
				Port:       "8460",
				JWTSecret:  "0123456789abcdef0123456789abcdef",
				DBPassword: "password",
				Env:        "production",
			},
			wantErr: true,
		},
		{
			name: "production passes with strong values",
			cfg: Config{
				Port:        "8460",
				JWTSecret:   "0123456789abcdef0123456789abcdef",
				DBPassword:  "v3ry-strong-password",
				S3AccessKey: "AKIA_TEST",
				S3SecretKey: "secret",
				Env:         "production",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
