package models

import "time"

// InvitationStatus is the lifecycle state of a ProjectInvitation. Only
// pending invitations may transition, and only once.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
	InvitationExpired  InvitationStatus = "expired"
)

// IsTerminal reports whether s can no longer change.
func (s InvitationStatus) IsTerminal() bool {
	return s != InvitationPending
}

// ProjectInvitation is an emailed offer to join a project. Rows are never
// deleted; they end in a terminal status.
type ProjectInvitation struct {
	ID             string
	Email          string
	Token          string
	Status         InvitationStatus
	ExpiresAt      time.Time
	ProjectID      string
	InviterID      string
	AcceptedUserID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InvitationDetails is an invitation joined with the project and inviter
// context a recipient needs to decide.
type InvitationDetails struct {
	ProjectInvitation
	ProjectName        string
	ProjectDescription string
	InviterName        string
}
