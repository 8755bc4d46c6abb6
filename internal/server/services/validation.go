package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/common"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Password length bounds. bcrypt ignores everything past 72 bytes.
const (
	minPasswordLen = 8
	maxPasswordLen = 72
	maxNameLen     = 100
	maxEmailLen    = 254
)

// normalizeEmail is applied at every entry point so lookups and equality
// checks run on one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// invalid turns a validation failure into a BadRequest.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", common.ErrorBadRequest, err)
}

var emailRules = []validation.Rule{validation.Required, validation.Length(3, maxEmailLen), is.Email}

var passwordRules = []validation.Rule{validation.Required, validation.Length(minPasswordLen, maxPasswordLen)}

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, maxNameLen)),
	)
}

type EmailRequest struct {
	Email string
}

func (r EmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
	)
}

type VerifyOtpRequest struct {
	Email string
	Code  string
}

func (r VerifyOtpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Code, validation.Required, validation.Length(6, 6), is.Digit),
	)
}

type LoginRequest struct {
	Email    string
	Password string
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type ResetPasswordRequest struct {
	Token       string
	NewPassword string
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.NewPassword, passwordRules...),
	)
}

type InviteRequest struct {
	ProjectID string
	InviterID string
	Emails    []string
}

func (r InviteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProjectID, validation.Required),
		validation.Field(&r.InviterID, validation.Required),
		validation.Field(&r.Emails, validation.Required, validation.Each(emailRules...)),
	)
}
