package postgres

import (
	"context"
	"database/sql"
	"errors"
	"file-processor/internal/core/domain"
	"file-processor/internal/core/port"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uploadColumns = `id, owner_id, file_ref, filename, size_bytes, status, attempts, created_at, updated_at`

type sqlUploadRepository struct {
	db SQLQuerier
}

// NewSqlUploadRepository creates sqlUploadRepository that implements port.UploadRepository
func NewSqlUploadRepository(db SQLQuerier) port.UploadRepository {
	return &sqlUploadRepository{
		db: db,
	}
}

// Create creates new upload entry
func (s *sqlUploadRepository) Create(ctx context.Context, record domain.UploadRecord) error {
	query := `INSERT INTO file_uploads (id, owner_id, file_ref, filename, size_bytes, status, attempts, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.OwnerID,
		record.FileRef,
		record.Filename,
		record.SizeBytes,
		record.Status,
		record.Attempts,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("upload %s : %w", record.ID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting upload: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlUploadRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadRecord, error) {
	query := `SELECT ` + uploadColumns + `
              FROM file_uploads
              WHERE id = $1`

	return s.findOne(ctx, query, id)
}

// FindByIDForOwner finds by id, hiding records that belong to another owner
func (s *sqlUploadRepository) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.UploadRecord, error) {
	query := `SELECT ` + uploadColumns + `
              FROM file_uploads
              WHERE id = $1 AND owner_id = $2`

	return s.findOne(ctx, query, id, ownerID)
}

// FindByOwner lists every upload of an owner, newest first
func (s *sqlUploadRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.UploadRecord, error) {
	query := `SELECT ` + uploadColumns + `
              FROM file_uploads
              WHERE owner_id = $1
              ORDER BY created_at DESC, id`

	return s.findMany(ctx, query, ownerID)
}

// FindByIDsForOwner returns the records among ids still owned by ownerID, in the order of ids
func (s *sqlUploadRepository) FindByIDsForOwner(ctx context.Context, ids []uuid.UUID, ownerID uuid.UUID) ([]domain.UploadRecord, error) {
	if len(ids) == 0 {
		return []domain.UploadRecord{}, nil
	}

	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}

	query := `SELECT ` + uploadColumns + `
              FROM file_uploads
              WHERE id = ANY($1::uuid[]) AND owner_id = $2`

	found, err := s.findMany(ctx, query, pq.StringArray(strIDs), ownerID)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.UploadRecord, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}
	ordered := make([]domain.UploadRecord, 0, len(found))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
			delete(byID, id)
		}
	}
	return ordered, nil
}

// UpdateStatus moves a record to status `to` if its current status is one of `from`.
// status, updated_at and attempts change in a single statement.
func (s *sqlUploadRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.UploadStatus, to domain.UploadStatus) error {
	prev := make([]string, 0, len(from))
	for _, st := range from {
		prev = append(prev, string(st))
	}

	attemptInc := 0
	if to == domain.UploadStatusProcessing {
		attemptInc = 1
	}

	query := `UPDATE file_uploads
              SET status = $1, updated_at = now(), attempts = attempts + $4
              WHERE id = $2 AND status = ANY($3::text[])`

	result, err := s.db.ExecContext(ctx, query, to, id, pq.StringArray(prev), attemptInc)
	if err != nil {
		return fmt.Errorf("error updating upload status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM file_uploads WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking upload existence: %w", err)
		}
		if !exists {
			return domain.ErrUploadNotFound
		}
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, id, to)
	}

	return nil
}

// FindStale finds uploads in status whose updated_at is before the given time
func (s *sqlUploadRepository) FindStale(ctx context.Context, status domain.UploadStatus, before time.Time) ([]domain.UploadRecord, error) {
	query := `SELECT ` + uploadColumns + `
              FROM file_uploads
              WHERE status = $1
                AND updated_at < $2
              ORDER BY updated_at`

	return s.findMany(ctx, query, status, before)
}

// Delete hard deletes an upload
func (s *sqlUploadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM file_uploads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting upload: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrUploadNotFound
	}
	return nil
}

func (s *sqlUploadRepository) findOne(ctx context.Context, query string, args ...any) (*domain.UploadRecord, error) {
	var dbUpload dbUploadRecord
	err := s.db.QueryRowContext(ctx, query, args...).Scan(dbUpload.scanTargets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, err
	}
	return dbUpload.ToDomain()
}

func (s *sqlUploadRepository) findMany(ctx context.Context, query string, args ...any) ([]domain.UploadRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying uploads: %w", err)
	}
	defer rows.Close()

	uploads := []domain.UploadRecord{}
	for rows.Next() {
		var dbUpload dbUploadRecord
		if err := rows.Scan(dbUpload.scanTargets()...); err != nil {
			return nil, fmt.Errorf("error scanning upload: %w", err)
		}
		upload, err := dbUpload.ToDomain()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating uploads: %w", err)
	}

	return uploads, nil
}

// dbUploadRecord represents an upload row
type dbUploadRecord struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	FileRef   string    `db:"file_ref"`
	Filename  string    `db:"filename"`
	SizeBytes int64     `db:"size_bytes"`
	Status    string    `db:"status"`
	Attempts  int       `db:"attempts"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u *dbUploadRecord) scanTargets() []any {
	return []any{
		&u.ID,
		&u.OwnerID,
		&u.FileRef,
		&u.Filename,
		&u.SizeBytes,
		&u.Status,
		&u.Attempts,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}

// ToDomain converts to domain.UploadRecord, rejecting statuses the state machine does not know
func (u *dbUploadRecord) ToDomain() (*domain.UploadRecord, error) {
	status := domain.UploadStatus(u.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("upload %s has unknown status %q", u.ID, u.Status)
	}
	return &domain.UploadRecord{
		ID:        u.ID,
		OwnerID:   u.OwnerID,
		FileRef:   u.FileRef,
		Filename:  u.Filename,
		SizeBytes: u.SizeBytes,
		Status:    status,
		Attempts:  u.Attempts,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}, nil
}
