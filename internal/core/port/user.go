package port

import (
	"context"
	"file-processor/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepository is an interface to look up upload owners
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// TokenVerifier resolves a bearer token to the authenticated user id
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}
