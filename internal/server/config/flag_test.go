package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		start       Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "acc", "-k", "ref",
				"-t", "15", "-r", "48", "-u", "https://app.example", "-n", "ses", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				DatabaseDSN:                  "db",
				AccessTokenSecret:            "acc",
				RefreshTokenSecret:           "ref",
				AccessTokenValidityDuration:  15 * time.Minute,
				RefreshTokenValidityDuration: 48 * time.Hour,
				PublicBaseURL:                "https://app.example",
				Notifier:                     "ses",
				LogLevel:                     "debug",
			},
		},
		{
			name:  "durations untouched without flags",
			args:  []string{"cmd", "-c", "cfg.json"},
			start: Config{AccessTokenValidityDuration: 90 * time.Second, RefreshTokenValidityDuration: 90 * time.Minute},
			expected: &Config{
				AccessTokenValidityDuration:  90 * time.Second,
				RefreshTokenValidityDuration: 90 * time.Minute,
			},
		},
		{
			name:        "bad int panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := tt.start

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(&config) })
				assert.Empty(t, cmp.Diff(&config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(&config) })
			}
		})
	}
}
