package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kleingarten/internal/district/models"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/platform/sentinel"
	txcontext "kleingarten/pkg/platform/tx"
)

// PostgresStore persists districts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed district store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const districtColumns = `id, name, status, plot_count, created_at, updated_at`

func (s *PostgresStore) Seed(ctx context.Context, district *models.District) error {
	query := `
		INSERT INTO districts (` + districtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(district.ID),
		district.Name,
		string(district.Status),
		district.PlotCount,
		district.CreatedAt,
		district.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("seed district: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, districtID id.DistrictID) (*models.District, error) {
	query := `SELECT ` + districtColumns + ` FROM districts WHERE id = $1`
	row := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(districtID))
	district, err := scanDistrict(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find district: %w", err)
	}
	return district, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.District, error) {
	query := `SELECT ` + districtColumns + ` FROM districts ORDER BY name`
	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()

	var districts []*models.District
	for rows.Next() {
		district, err := scanDistrict(rows)
		if err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		districts = append(districts, district)
	}
	return districts, rows.Err()
}

func (s *PostgresStore) IncrementPlotCount(ctx context.Context, districtID id.DistrictID) error {
	return s.movePlotCount(ctx, districtID, `plot_count + 1`)
}

func (s *PostgresStore) DecrementPlotCount(ctx context.Context, districtID id.DistrictID) error {
	return s.movePlotCount(ctx, districtID, `GREATEST(plot_count - 1, 0)`)
}

func (s *PostgresStore) movePlotCount(ctx context.Context, districtID id.DistrictID, expr string) error {
	query := `UPDATE districts SET plot_count = ` + expr + `, updated_at = NOW() WHERE id = $1`
	result, err := s.execer(ctx).ExecContext(ctx, query, uuid.UUID(districtID))
	if err != nil {
		return fmt.Errorf("update plot count: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update plot count: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDistrict(row rowScanner) (*models.District, error) {
	var district models.District
	var districtID uuid.UUID
	var status string
	if err := row.Scan(
		&districtID,
		&district.Name,
		&status,
		&district.PlotCount,
		&district.CreatedAt,
		&district.UpdatedAt,
	); err != nil {
		return nil, err
	}
	district.ID = id.DistrictID(districtID)
	district.Status = models.DistrictStatus(status)
	return &district, nil
}
