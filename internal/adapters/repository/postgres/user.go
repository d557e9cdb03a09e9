package postgres

import (
	"context"
	"database/sql"
	"errors"
	"file-processor/internal/core/domain"
	"file-processor/internal/core/port"
	"fmt"

	"github.com/google/uuid"
)

type sqlUserRepository struct {
	db SQLQuerier
}

// NewSqlUserRepository creates sqlUserRepository that implements port.UserRepository
func NewSqlUserRepository(db SQLQuerier) port.UserRepository {
	return &sqlUserRepository{db: db}
}

// FindByID finds by id
func (s *sqlUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, email, username FROM users WHERE id = $1`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return &user, nil
}
