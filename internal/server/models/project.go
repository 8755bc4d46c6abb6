package models

import "time"

// Project is the slice of a project the collaboration core needs: identity,
// display fields and owner.
type Project struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	CreatedAt   time.Time
}
