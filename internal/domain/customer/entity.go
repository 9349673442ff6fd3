package customer

import "time"

type Customer struct {
	ID          string
	Name        string
	SiteAddress *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
