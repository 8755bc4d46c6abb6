package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/logging"
	"github.com/dmitrijs2005/taskhub/internal/server/config"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/notify"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskhub/internal/timex"
	"github.com/dmitrijs2005/taskhub/internal/tokens"
)

var (
	ErrInvitationNotFound = fmt.Errorf("%w: invitation not found", common.ErrorNotFound)
	ErrInvitationExpired  = fmt.Errorf("%w: invitation has expired", common.ErrorBadRequest)
	ErrInvitationMismatch = fmt.Errorf("%w: invitation was sent to a different email", common.ErrorBadRequest)
	ErrAlreadyMember      = fmt.Errorf("%w: user is already a member of this project", common.ErrorConflict)
	ErrNotProjectOwner    = fmt.Errorf("%w: only the project owner can invite members", common.ErrorUnauthorized)
	ErrUnknownUser        = fmt.Errorf("%w: unknown user", common.ErrorUnauthorized)
)

// errInvitationChanged aborts an accept transaction whose pending invitation
// was moved on by someone else after it was read.
var errInvitationChanged = errors.New("invitation changed")

// invitationNotPending reports the terminal status an invitation is in.
func invitationNotPending(status models.InvitationStatus) error {
	return fmt.Errorf("%w: invitation is %s", common.ErrorBadRequest, status)
}

// InviteStatus says what Invite did for one email.
type InviteStatus string

const (
	InviteSent          InviteStatus = "invited"
	InviteAddedDirectly InviteStatus = "added"
	InviteAlreadyMember InviteStatus = "already_member"
)

// InviteOutcome is the per-recipient result of InviteMembers.
type InviteOutcome struct {
	Email        string       `json:"email"`
	Status       InviteStatus `json:"status"`
	InvitationID string       `json:"invitation_id,omitempty"`
	Notified     bool         `json:"notified"`
}

// InvitationPreview is what a recipient sees before deciding.
type InvitationPreview struct {
	ID                 string                  `json:"id"`
	Email              string                  `json:"email"`
	Status             models.InvitationStatus `json:"status"`
	ExpiresAt          time.Time               `json:"expires_at"`
	ProjectID          string                  `json:"project_id"`
	ProjectName        string                  `json:"project_name"`
	ProjectDescription string                  `json:"project_description"`
	InviterName        string                  `json:"inviter_name"`
	CreatedAt          time.Time               `json:"created_at"`
}

func previewOf(d *models.InvitationDetails) *InvitationPreview {
	return &InvitationPreview{
		ID:                 d.ID,
		Email:              d.Email,
		Status:             d.Status,
		ExpiresAt:          d.ExpiresAt,
		ProjectID:          d.ProjectID,
		ProjectName:        d.ProjectName,
		ProjectDescription: d.ProjectDescription,
		InviterName:        d.InviterName,
		CreatedAt:          d.CreatedAt,
	}
}

// AcceptResult is returned by AcceptInvitation. When RequiresRegistration is
// set nothing was changed and Invitation carries the context for signup.
type AcceptResult struct {
	Success              bool               `json:"success"`
	RequiresRegistration bool               `json:"requires_registration"`
	Invitation           *InvitationPreview `json:"invitation,omitempty"`
	Project              *models.Project    `json:"project,omitempty"`
}

// InvitationService implements the invitation lifecycle.
type InvitationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	notifier    notify.Notifier
	logger      logging.Logger
	links       Links
	ttl         time.Duration

	tokens tokens.Generator
	now    func() time.Time
}

func NewInvitationService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, n notify.Notifier, l logging.Logger) *InvitationService {
	return &InvitationService{
		db:          db,
		repomanager: m,
		notifier:    n,
		logger:      l.With("module", "invitation_service"),
		links:       NewLinks(cfg.PublicBaseURL),
		ttl:         cfg.InvitationValidityDuration,
		tokens:      tokens.Random{},
		now:         time.Now,
	}
}

// InviteMembers invites every email to the project. Existing users are added
// directly; everybody else gets a pending invitation. A notification failure
// for one recipient does not stop the batch.
func (s *InvitationService) InviteMembers(ctx context.Context, req InviteRequest) ([]InviteOutcome, error) {
	emails := make([]string, len(req.Emails))
	for i, e := range req.Emails {
		emails[i] = normalizeEmail(e)
	}
	req.Emails = emails
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	project, err := s.repomanager.Projects(s.db).GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: project not found", common.ErrorNotFound)
		}
		return nil, fmt.Errorf("error looking up project: %w", err)
	}
	if project.OwnerID != req.InviterID {
		return nil, ErrNotProjectOwner
	}

	inviter, err := s.repomanager.Users(s.db).GetByID(ctx, req.InviterID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("error looking up inviter: %w", err)
	}

	seen := make(map[string]struct{}, len(req.Emails))
	out := make([]InviteOutcome, 0, len(req.Emails))
	for _, email := range req.Emails {
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}

		o, err := s.Invite(ctx, project, inviter, email)
		if err != nil {
			return out, err
		}
		out = append(out, *o)
	}
	return out, nil
}

// Invite handles one recipient. project and inviter are already resolved
// and the inviter's ownership checked.
func (s *InvitationService) Invite(ctx context.Context, project *models.Project, inviter *models.User, email string) (*InviteOutcome, error) {
	email = normalizeEmail(email)

	existing, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	switch {
	case err == nil:
		return s.addExisting(ctx, project, inviter, existing)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up invitee: %w", err)
	}

	inv, err := s.repomanager.Invitations(s.db).Create(ctx, &models.ProjectInvitation{
		Email:     email,
		Token:     s.tokens.Token(),
		Status:    models.InvitationPending,
		ExpiresAt: s.now().Add(s.ttl),
		ProjectID: project.ID,
		InviterID: inviter.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating invitation: %w", err)
	}

	res := notify.Deliver(ctx, s.notifier, s.logger, notify.TemplateProjectInvitation, email, map[string]any{
		"inviter_name": inviter.Name,
		"project_name": project.Name,
		"accept_url":   s.links.AcceptInvitation(inv.Token),
		"decline_url":  s.links.DeclineInvitation(inv.Token),
		"expires_at":   inv.ExpiresAt.UTC().Format(time.RFC1123),
	})

	s.logger.Info(ctx, "invitation created", "invitation_id", inv.ID, "project_id", project.ID)
	return &InviteOutcome{Email: email, Status: InviteSent, InvitationID: inv.ID, Notified: res.Success}, nil
}

func (s *InvitationService) addExisting(ctx context.Context, project *models.Project, inviter, user *models.User) (*InviteOutcome, error) {
	repo := s.repomanager.Projects(s.db)

	member, err := repo.IsMember(ctx, project.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking membership: %w", err)
	}
	if member {
		return &InviteOutcome{Email: user.Email, Status: InviteAlreadyMember}, nil
	}

	if err := repo.AddMember(ctx, project.ID, user.ID); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return &InviteOutcome{Email: user.Email, Status: InviteAlreadyMember}, nil
		}
		return nil, fmt.Errorf("error adding member: %w", err)
	}

	res := notify.Deliver(ctx, s.notifier, s.logger, notify.TemplateProjectAdded, user.Email, map[string]any{
		"name":         user.Name,
		"inviter_name": inviter.Name,
		"project_name": project.Name,
		"project_url":  s.links.Project(project.ID),
	})
	return &InviteOutcome{Email: user.Email, Status: InviteAddedDirectly, Notified: res.Success}, nil
}

// VerifyInvitation returns the preview of a pending invitation.
func (s *InvitationService) VerifyInvitation(ctx context.Context, token string) (*InvitationPreview, error) {
	inv, err := s.loadByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.requirePending(ctx, inv); err != nil {
		return nil, err
	}
	return previewOf(inv), nil
}

// AcceptInvitation joins userID to the invitation's project. With an empty
// userID the invitation is left untouched and the caller is told to
// register first.
func (s *InvitationService) AcceptInvitation(ctx context.Context, token, userID string) (*AcceptResult, error) {
	inv, err := s.loadByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.expireIfStale(ctx, inv); err != nil {
		return nil, err
	}

	if userID == "" {
		if inv.Status != models.InvitationPending {
			return nil, invitationNotPending(inv.Status)
		}
		return &AcceptResult{RequiresRegistration: true, Invitation: previewOf(inv)}, nil
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user.Email != inv.Email {
		return nil, ErrInvitationMismatch
	}

	member, err := s.repomanager.Projects(s.db).IsMember(ctx, inv.ProjectID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking membership: %w", err)
	}
	if member {
		return nil, ErrAlreadyMember
	}
	if inv.Status != models.InvitationPending {
		return nil, invitationNotPending(inv.Status)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Projects(tx).AddMember(ctx, inv.ProjectID, user.ID); err != nil {
			if errors.Is(err, common.ErrorConflict) {
				return ErrAlreadyMember
			}
			return err
		}
		err := s.repomanager.Invitations(tx).Transition(ctx, inv.ID,
			models.InvitationPending, models.InvitationAccepted, &user.ID)
		if errors.Is(err, common.ErrorConflict) {
			return errInvitationChanged
		}
		return err
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrAlreadyMember):
		return nil, ErrAlreadyMember
	case errors.Is(err, errInvitationChanged):
		return nil, s.changedStatus(ctx, inv.ID)
	default:
		return nil, fmt.Errorf("error accepting invitation: %w", err)
	}

	project, err := s.repomanager.Projects(s.db).GetByID(ctx, inv.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("error loading project: %w", err)
	}

	s.logger.Info(ctx, "invitation accepted", "invitation_id", inv.ID, "user_id", user.ID)
	return &AcceptResult{Success: true, Project: project}, nil
}

// changedStatus explains a lost accept race with the invitation's current
// status, e.g. declined or expired by a concurrent request.
func (s *InvitationService) changedStatus(ctx context.Context, id string) error {
	current, err := s.repomanager.Invitations(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("error reloading invitation: %w", err)
	}
	if current.Status == models.InvitationPending {
		return fmt.Errorf("%w: invitation changed, try again", common.ErrorConflict)
	}
	return invitationNotPending(current.Status)
}

// AcceptInvitationByID accepts an invitation picked from the user's own
// list. Every guard of AcceptInvitation still applies.
func (s *InvitationService) AcceptInvitationByID(ctx context.Context, id, userID string) (*AcceptResult, error) {
	inv, err := s.repomanager.Invitations(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("error looking up invitation: %w", err)
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user.Email != inv.Email {
		return nil, ErrInvitationMismatch
	}

	return s.AcceptInvitation(ctx, inv.Token, user.ID)
}

// DeclineInvitation closes a pending invitation.
func (s *InvitationService) DeclineInvitation(ctx context.Context, token string) error {
	inv, err := s.loadByToken(ctx, token)
	if err != nil {
		return err
	}
	if err := s.expireIfStale(ctx, inv); err != nil {
		if errors.Is(err, ErrInvitationExpired) {
			return ErrInvitationNotFound
		}
		return err
	}
	if inv.Status != models.InvitationPending {
		return ErrInvitationNotFound
	}

	err = s.repomanager.Invitations(s.db).Transition(ctx, inv.ID,
		models.InvitationPending, models.InvitationDeclined, nil)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("error declining invitation: %w", err)
	}

	s.logger.Info(ctx, "invitation declined", "invitation_id", inv.ID)
	return nil
}

// ListUserInvitations returns the pending invitations addressed to email,
// newest first. Stale ones are marked expired on the way.
func (s *InvitationService) ListUserInvitations(ctx context.Context, email string) ([]*InvitationPreview, error) {
	email = normalizeEmail(email)
	repo := s.repomanager.Invitations(s.db)

	now := s.now()
	if n, err := repo.ExpireStale(ctx, email, now); err != nil {
		return nil, fmt.Errorf("error expiring invitations: %w", err)
	} else if n > 0 {
		s.logger.Debug(ctx, "expired stale invitations", "count", n)
	}

	list, err := repo.ListPendingByEmail(ctx, email, now)
	if err != nil {
		return nil, fmt.Errorf("error listing invitations: %w", err)
	}

	out := make([]*InvitationPreview, 0, len(list))
	for _, inv := range list {
		out = append(out, previewOf(inv))
	}
	return out, nil
}

func (s *InvitationService) loadByToken(ctx context.Context, token string) (*models.InvitationDetails, error) {
	if token == "" {
		return nil, ErrInvitationNotFound
	}
	inv, err := s.repomanager.Invitations(s.db).GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("error looking up invitation: %w", err)
	}
	return inv, nil
}

// expireIfStale promotes a pending invitation past its expiry to expired and
// reports it. A non-pending invitation is left for the caller to judge.
func (s *InvitationService) expireIfStale(ctx context.Context, inv *models.InvitationDetails) error {
	if inv.Status != models.InvitationPending || !timex.Expired(s.now(), inv.ExpiresAt) {
		return nil
	}

	err := s.repomanager.Invitations(s.db).Transition(ctx, inv.ID,
		models.InvitationPending, models.InvitationExpired, nil)
	if err != nil && !errors.Is(err, common.ErrorConflict) {
		return fmt.Errorf("error expiring invitation: %w", err)
	}
	if err == nil {
		inv.Status = models.InvitationExpired
		return ErrInvitationExpired
	}

	// lost a race with another transition; report what is stored now
	fresh, ferr := s.loadByToken(ctx, inv.Token)
	if ferr != nil {
		return ferr
	}
	*inv = *fresh
	if inv.Status == models.InvitationExpired {
		return ErrInvitationExpired
	}
	return nil
}

func (s *InvitationService) requirePending(ctx context.Context, inv *models.InvitationDetails) error {
	if err := s.expireIfStale(ctx, inv); err != nil {
		return err
	}
	if inv.Status != models.InvitationPending {
		return invitationNotPending(inv.Status)
	}
	return nil
}
