package utils

import "github.com/google/uuid"

const (
	RoleUser    = "USER"
	RoleOwner   = "OWNER"
	RoleTrainer = "TRAINER"
)

// Principal is the verified caller handed to services explicitly.
type Principal struct {
	ID        uuid.UUID
	AccountID string
	Role      string
}

func (p *Principal) Is(role string) bool {
	return p != nil && p.Role == role
}
