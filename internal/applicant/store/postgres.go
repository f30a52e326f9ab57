package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kleingarten/internal/applicant/models"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/platform/sentinel"
	txcontext "kleingarten/pkg/platform/tx"
)

// PostgresStore reads the applicant registry from PostgreSQL. The engine
// never writes applications or persons; the workflow service owning those
// tables does.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed applicant registry.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) queryer(ctx context.Context) dbQueryer {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) PersonExists(ctx context.Context, personID id.PersonID) (bool, error) {
	var exists bool
	err := s.queryer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM persons WHERE id = $1)`,
		uuid.UUID(personID),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check person: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) ApplicationStatus(ctx context.Context, applicationID id.ApplicationID) (models.ApplicationStatus, error) {
	var status string
	err := s.queryer(ctx).QueryRowContext(ctx,
		`SELECT status FROM applications WHERE id = $1`,
		uuid.UUID(applicationID),
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("load application status: %w", err)
	}
	return models.ApplicationStatus(status), nil
}

func (s *PostgresStore) CountByPlot(ctx context.Context, plotID id.PlotID) (int, error) {
	var count int
	err := s.queryer(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applications WHERE plot_id = $1`,
		uuid.UUID(plotID),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count applications by plot: %w", err)
	}
	return count, nil
}
