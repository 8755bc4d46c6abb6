// Package services contains server-side business logic. CredentialService
// owns the account lifecycle (registration by one-time code, login, token
// refresh, password reset and email re-verification); InvitationService owns
// project invitations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/cryptox"
	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/logging"
	"github.com/dmitrijs2005/taskhub/internal/server/auth"
	"github.com/dmitrijs2005/taskhub/internal/server/config"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/notify"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskhub/internal/timex"
	"github.com/dmitrijs2005/taskhub/internal/tokens"
)

// Messages returned where the response must not reveal whether an account
// exists.
const (
	MsgResetRequested        = "if an account exists for this email, a reset link has been sent"
	MsgVerificationRequested = "if an unverified account exists for this email, a verification link has been sent"
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", common.ErrorUnauthorized)
	ErrEmailNotVerified   = fmt.Errorf("%w: email address is not verified", common.ErrorUnauthorized)
	ErrInvalidSession     = fmt.Errorf("%w: invalid or expired refresh token", common.ErrorUnauthorized)

	ErrAccountExists       = fmt.Errorf("%w: an account with this email already exists", common.ErrorConflict)
	ErrNoPendingSignup     = fmt.Errorf("%w: no pending registration for this email", common.ErrorNotFound)
	ErrInvalidOtp          = fmt.Errorf("%w: invalid verification code", common.ErrorBadRequest)
	ErrOtpExpired          = fmt.Errorf("%w: verification code has expired", common.ErrorBadRequest)
	ErrInvalidResetToken   = fmt.Errorf("%w: invalid or expired reset token", common.ErrorBadRequest)
	ErrInvalidVerifyToken  = fmt.Errorf("%w: invalid or expired verification token", common.ErrorBadRequest)
	ErrEmailAlreadyConfirm = fmt.Errorf("%w: email address is already verified", common.ErrorBadRequest)
)

// Ack is a success-shaped response with no payload.
type Ack struct {
	Message string `json:"message"`
}

// RegistrationAck confirms a pending registration. OtpSent is false when
// the notifier failed; the caller can then ask for a new code.
type RegistrationAck struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	OtpSent   bool      `json:"otp_sent"`
}

// LoginResult is a fresh session plus the caller's profile.
type LoginResult struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         models.Profile `json:"user"`
}

// CredentialService implements the account and session state machine.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
	hasher      *cryptox.PasswordHasher
	notifier    notify.Notifier
	logger      logging.Logger
	links       Links

	otpTTL          time.Duration
	resetTTL        time.Duration
	verificationTTL time.Duration

	tokens tokens.Generator
	now    func() time.Time
}

// NewCredentialService builds a CredentialService from server config.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, n notify.Notifier, l logging.Logger) *CredentialService {
	return &CredentialService{
		db:          db,
		repomanager: m,
		issuer: auth.NewIssuer(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
			cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration, nil),
		hasher:          cryptox.NewPasswordHasher(cfg.BcryptCost),
		notifier:        n,
		logger:          l.With("module", "credential_service"),
		links:           NewLinks(cfg.PublicBaseURL),
		otpTTL:          cfg.OTPValidityDuration,
		resetTTL:        cfg.PasswordResetValidityDuration,
		verificationTTL: cfg.EmailVerificationValidityDuration,
		tokens:          tokens.Random{},
		now:             time.Now,
	}
}

// Issuer exposes the token issuer so the transport layer can validate
// access tokens with the same secrets.
func (s *CredentialService) Issuer() *auth.Issuer { return s.issuer }

// Register stores a pending registration and mails its one-time code. A
// repeated request for the same email replaces the earlier one.
func (s *CredentialService) Register(ctx context.Context, req RegisterRequest) (*RegistrationAck, error) {
	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	if _, err := s.repomanager.Users(s.db).GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrAccountExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	pending := &models.PendingRegistration{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		OTPCode:      s.tokens.Code(),
		OTPExpiry:    s.now().Add(s.otpTTL),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Registrations(tx)
		if err := repo.DeleteByEmail(ctx, pending.Email); err != nil {
			return err
		}
		created, err := repo.Create(ctx, pending)
		if err != nil {
			return err
		}
		pending = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error saving registration: %w", err)
	}

	res := s.sendOtp(ctx, pending)
	return &RegistrationAck{Email: pending.Email, ExpiresAt: pending.OTPExpiry, OtpSent: res.Success}, nil
}

// GenerateOtp issues a fresh code for an existing pending registration.
func (s *CredentialService) GenerateOtp(ctx context.Context, req EmailRequest) (*RegistrationAck, error) {
	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	repo := s.repomanager.Registrations(s.db)
	pending, err := repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrNoPendingSignup
		}
		return nil, fmt.Errorf("error looking up registration: %w", err)
	}

	pending.OTPCode = s.tokens.Code()
	pending.OTPExpiry = s.now().Add(s.otpTTL)
	if err := repo.UpdateOTP(ctx, pending.ID, pending.OTPCode, pending.OTPExpiry); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrNoPendingSignup
		}
		return nil, fmt.Errorf("error updating code: %w", err)
	}

	res := s.sendOtp(ctx, pending)
	return &RegistrationAck{Email: pending.Email, ExpiresAt: pending.OTPExpiry, OtpSent: res.Success}, nil
}

// VerifyOtp converts a pending registration into a verified user. It does
// not log the user in.
func (s *CredentialService) VerifyOtp(ctx context.Context, req VerifyOtpRequest) (*models.Profile, error) {
	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	pending, err := s.repomanager.Registrations(s.db).GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrNoPendingSignup
		}
		return nil, fmt.Errorf("error looking up registration: %w", err)
	}

	if !cryptox.EqualCodes(pending.OTPCode, req.Code) {
		return nil, ErrInvalidOtp
	}
	if timex.Expired(s.now(), pending.OTPExpiry) {
		return nil, ErrOtpExpired
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			Email:           pending.Email,
			PasswordHash:    pending.PasswordHash,
			Name:            pending.Name,
			Role:            models.RoleMember,
			IsEmailVerified: true,
		})
		if err != nil {
			return err
		}
		if err := s.repomanager.Registrations(tx).Delete(ctx, pending.ID); err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorConflict):
			return nil, ErrAccountExists
		case errors.Is(err, common.ErrorNotFound):
			// another request completed this registration first
			return nil, ErrNoPendingSignup
		}
		return nil, fmt.Errorf("error completing registration: %w", err)
	}

	s.logger.Info(ctx, "registration completed", "user_id", user.ID)
	profile := user.Profile()
	return &profile, nil
}

// Login checks credentials and starts a new session, replacing any previous
// refresh token.
func (s *CredentialService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, ErrInvalidCredentials
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.CompareDummy(req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := s.hasher.Compare(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error checking password: %w", err)
	}

	if !user.IsEmailVerified {
		return nil, ErrEmailNotVerified
	}

	pair, err := s.issuer.IssuePair(identityOf(user))
	if err != nil {
		return nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	hash := cryptox.HashRefreshToken(pair.RefreshToken)
	if err := repo.SetRefreshTokenHash(ctx, user.ID, &hash); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}

	return &LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Profile(),
	}, nil
}

// RefreshToken rotates the session: the presented token must be the one
// currently stored, and is invalid afterwards.
func (s *CredentialService) RefreshToken(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidSession
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if user.RefreshTokenHash == nil || !cryptox.VerifyRefreshToken(refreshToken, *user.RefreshTokenHash) {
		s.logger.Warn(ctx, "refresh token does not match stored session", "user_id", user.ID)
		return nil, ErrInvalidSession
	}

	pair, err := s.issuer.IssuePair(identityOf(user))
	if err != nil {
		return nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	newHash := cryptox.HashRefreshToken(pair.RefreshToken)
	if err := repo.RotateRefreshTokenHash(ctx, user.ID, *user.RefreshTokenHash, newHash); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("error rotating session: %w", err)
	}

	return pair, nil
}

// Logout drops the stored refresh token. Calling it again is harmless.
func (s *CredentialService) Logout(ctx context.Context, userID string) error {
	if err := s.repomanager.Users(s.db).SetRefreshTokenHash(ctx, userID, nil); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

// ForgotPassword mails a reset link if the account exists. The response is
// the same either way.
func (s *CredentialService) ForgotPassword(ctx context.Context, req EmailRequest) (*Ack, error) {
	ack := &Ack{Message: MsgResetRequested}

	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return ack, nil
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ack, nil
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	token := s.tokens.Token()
	if err := repo.SetResetToken(ctx, user.ID, cryptox.LookupHash(token), s.now().Add(s.resetTTL)); err != nil {
		return nil, fmt.Errorf("error saving reset token: %w", err)
	}

	notify.Deliver(ctx, s.notifier, s.logger, notify.TemplatePasswordReset, user.Email, map[string]any{
		"name":       user.Name,
		"reset_url":  s.links.ResetPassword(token),
		"expires_in": int(s.resetTTL.Minutes()),
	})
	return ack, nil
}

// ResetPassword sets a new password using a reset token and ends every
// session of the account.
func (s *CredentialService) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*Ack, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	repo := s.repomanager.Users(s.db)
	lookup := cryptox.LookupHash(req.Token)
	user, err := repo.GetByResetTokenHash(ctx, lookup)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, fmt.Errorf("error looking up reset token: %w", err)
	}
	if user.ResetTokenExpiry == nil || timex.Expired(s.now(), *user.ResetTokenExpiry) {
		return nil, ErrInvalidResetToken
	}

	passwordHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	if err := repo.ResetPassword(ctx, user.ID, lookup, passwordHash); err != nil {
		if errors.Is(err, common.ErrorConflict) || errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, fmt.Errorf("error resetting password: %w", err)
	}

	s.logger.Info(ctx, "password reset", "user_id", user.ID)
	return &Ack{Message: "password has been reset"}, nil
}

// ResendVerificationEmail mails a verification link to an unverified
// account. The response is the same whether or not one was sent.
func (s *CredentialService) ResendVerificationEmail(ctx context.Context, req EmailRequest) (*Ack, error) {
	ack := &Ack{Message: MsgVerificationRequested}

	req.Email = normalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return ack, nil
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ack, nil
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user.IsEmailVerified {
		return ack, nil
	}

	token := s.tokens.Token()
	if err := repo.SetEmailVerificationToken(ctx, user.ID, cryptox.LookupHash(token), s.now().Add(s.verificationTTL)); err != nil {
		return nil, fmt.Errorf("error saving verification token: %w", err)
	}

	notify.Deliver(ctx, s.notifier, s.logger, notify.TemplateEmailVerification, user.Email, map[string]any{
		"name":       user.Name,
		"verify_url": s.links.VerifyEmail(token),
		"expires_in": int(s.verificationTTL.Hours()),
	})
	return ack, nil
}

// VerifyEmail marks the account holding token as verified.
func (s *CredentialService) VerifyEmail(ctx context.Context, token string) (*models.Profile, error) {
	if token == "" {
		return nil, ErrInvalidVerifyToken
	}

	repo := s.repomanager.Users(s.db)
	lookup := cryptox.LookupHash(token)
	user, err := repo.GetByEmailVerificationTokenHash(ctx, lookup)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidVerifyToken
		}
		return nil, fmt.Errorf("error looking up verification token: %w", err)
	}
	if user.IsEmailVerified {
		return nil, ErrEmailAlreadyConfirm
	}
	if user.EmailVerificationExpiry == nil || timex.Expired(s.now(), *user.EmailVerificationExpiry) {
		return nil, ErrInvalidVerifyToken
	}

	if err := repo.MarkEmailVerified(ctx, user.ID, lookup); err != nil {
		if errors.Is(err, common.ErrorConflict) || errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidVerifyToken
		}
		return nil, fmt.Errorf("error verifying email: %w", err)
	}

	user.IsEmailVerified = true
	profile := user.Profile()
	return &profile, nil
}

func (s *CredentialService) sendOtp(ctx context.Context, p *models.PendingRegistration) notify.Result {
	return notify.Deliver(ctx, s.notifier, s.logger, notify.TemplateOTP, p.Email, map[string]any{
		"name":       p.Name,
		"code":       p.OTPCode,
		"expires_in": int(s.otpTTL.Minutes()),
	})
}

func identityOf(u *models.User) auth.Identity {
	return auth.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}
