package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/flagx"
	"github.com/dmitrijs2005/taskhub/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted. Absent
// keys keep the value already present in Config.
type JsonConfig struct {
	EndpointAddrGRPC                  *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                       *string         `json:"database_dsn"`
	LogLevel                          *string         `json:"log_level"`
	AccessTokenSecret                 *string         `json:"access_token_secret"`
	RefreshTokenSecret                *string         `json:"refresh_token_secret"`
	AccessTokenValidityDuration       *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration      *timex.Duration `json:"refresh_token_validity_duration"`
	OTPValidityDuration               *timex.Duration `json:"otp_validity_duration"`
	PasswordResetValidityDuration     *timex.Duration `json:"password_reset_validity_duration"`
	EmailVerificationValidityDuration *timex.Duration `json:"email_verification_validity_duration"`
	InvitationValidityDuration        *timex.Duration `json:"invitation_validity_duration"`
	BcryptCost                        *int            `json:"bcrypt_cost"`
	PublicBaseURL                     *string         `json:"public_base_url"`
	Notifier                          *string         `json:"notifier"`
	MailFrom                          *string         `json:"mail_from"`
	SESRegion                         *string         `json:"ses_region"`
	SESBaseEndpoint                   *string         `json:"ses_base_endpoint"`
	SESAccessKeyID                    *string         `json:"ses_access_key_id"`
	SESSecretAccessKey                *string         `json:"ses_secret_access_key"`
}

// parseJson loads configuration values from the JSON file named by -c/-config
// (or $TASKHUB_CONFIG) into config. No path means nothing to load. An
// unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.AccessTokenSecret, c.AccessTokenSecret)
	setString(&config.RefreshTokenSecret, c.RefreshTokenSecret)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.OTPValidityDuration, c.OTPValidityDuration)
	setDuration(&config.PasswordResetValidityDuration, c.PasswordResetValidityDuration)
	setDuration(&config.EmailVerificationValidityDuration, c.EmailVerificationValidityDuration)
	setDuration(&config.InvitationValidityDuration, c.InvitationValidityDuration)
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	setString(&config.PublicBaseURL, c.PublicBaseURL)
	setString(&config.Notifier, c.Notifier)
	setString(&config.MailFrom, c.MailFrom)
	setString(&config.SESRegion, c.SESRegion)
	setString(&config.SESBaseEndpoint, c.SESBaseEndpoint)
	setString(&config.SESAccessKeyID, c.SESAccessKeyID)
	setString(&config.SESSecretAccessKey, c.SESSecretAccessKey)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
