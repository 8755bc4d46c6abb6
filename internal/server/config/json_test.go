package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("TASKHUB_CONFIG", "")

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc":                   "www.example:9000",
		"database_dsn":                         "postgres://json",
		"access_token_secret":                  "a-secret",
		"refresh_token_secret":                 "r-secret",
		"access_token_validity_duration":       "30m",
		"refresh_token_validity_duration":      "72h",
		"otp_validity_duration":                "5m",
		"password_reset_validity_duration":     "20m",
		"email_verification_validity_duration": "12h",
		"invitation_validity_duration":         "96h",
		"bcrypt_cost":                          10,
		"public_base_url":                      "https://tasks.example",
		"notifier":                             "ses",
		"mail_from":                            "ops@tasks.example",
		"ses_region":                           "eu-west-1",
		"ses_base_endpoint":                    "http://localhost:4566",
		"ses_access_key_id":                    "key",
		"ses_secret_access_key":                "secret",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
		assert.Equal(t, "a-secret", cfg.AccessTokenSecret)
		assert.Equal(t, "r-secret", cfg.RefreshTokenSecret)
		assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 72*time.Hour, cfg.RefreshTokenValidityDuration)
		assert.Equal(t, 5*time.Minute, cfg.OTPValidityDuration)
		assert.Equal(t, 20*time.Minute, cfg.PasswordResetValidityDuration)
		assert.Equal(t, 12*time.Hour, cfg.EmailVerificationValidityDuration)
		assert.Equal(t, 96*time.Hour, cfg.InvitationValidityDuration)
		assert.Equal(t, 10, cfg.BcryptCost)
		assert.Equal(t, "https://tasks.example", cfg.PublicBaseURL)
		assert.Equal(t, "ses", cfg.Notifier)
		assert.Equal(t, "ops@tasks.example", cfg.MailFrom)
		assert.Equal(t, "eu-west-1", cfg.SESRegion)
		assert.Equal(t, "http://localhost:4566", cfg.SESBaseEndpoint)
		assert.Equal(t, "key", cfg.SESAccessKeyID)
		assert.Equal(t, "secret", cfg.SESSecretAccessKey)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "debug"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 10*time.Minute, cfg.OTPValidityDuration)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrGRPC: "defaults:1234", OTPValidityDuration: 2 * time.Minute}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, 2*time.Minute, cfg.OTPValidityDuration)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
