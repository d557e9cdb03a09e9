package domain

import "github.com/google/uuid"

// User represents the owner of uploads, as far as this service needs to know about it
type User struct {
	ID       uuid.UUID
	Email    string
	Username string
}
