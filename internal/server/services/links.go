package services

import (
	"net/url"
	"strings"
)

// Links builds the user-facing URLs placed in emails.
type Links struct {
	base string
}

func NewLinks(baseURL string) Links {
	return Links{base: strings.TrimRight(baseURL, "/")}
}

func (l Links) build(path string, token string) string {
	q := url.Values{}
	q.Set("token", token)
	return l.base + path + "?" + q.Encode()
}

func (l Links) ResetPassword(token string) string { return l.build("/reset-password", token) }

func (l Links) VerifyEmail(token string) string { return l.build("/verify-email", token) }

func (l Links) AcceptInvitation(token string) string { return l.build("/invitations/accept", token) }

func (l Links) DeclineInvitation(token string) string {
	return l.build("/invitations/decline", token)
}

func (l Links) Project(projectID string) string {
	return l.base + "/projects/" + url.PathEscape(projectID)
}
