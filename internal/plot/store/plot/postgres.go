package plot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"kleingarten/internal/plot/models"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/platform/sentinel"
	txcontext "kleingarten/pkg/platform/tx"
)

// PostgresStore persists plots in PostgreSQL.
//
// Soft delete is an explicit predicate (`NOT deleted`) on every read path,
// not an implicit interception layer, and optimistic concurrency is an
// explicit version column compared on every write.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed plot store.
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

const plotColumns = `
	id, district_id, number, area, status, price, assigned_on, notes,
	special_features, has_water, has_electricity, priority,
	created_at, created_by, updated_at, updated_by, deleted, version`

const uniqueViolation = "23505"

func (s *PostgresStore) Create(ctx context.Context, plot *models.Plot) error {
	if err := plot.CheckInvariants(); err != nil {
		return err
	}
	query := `
		INSERT INTO plots (` + plotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, false, 1)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(plot.ID),
		uuid.UUID(plot.DistrictID),
		plot.Number,
		plot.Area,
		string(plot.Status),
		nullDecimal(plot.Price),
		nullTime(plot.AssignedOn),
		plot.Notes,
		nullString(plot.SpecialFeatures),
		plot.HasWater,
		plot.HasElectricity,
		plot.Priority,
		plot.CreatedAt,
		plot.CreatedBy,
		plot.UpdatedAt,
		plot.UpdatedBy,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert plot: %w", err)
	}
	plot.Version = 1
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, plotID id.PlotID) (*models.Plot, error) {
	query := `SELECT ` + plotColumns + ` FROM plots WHERE id = $1 AND NOT deleted`
	row := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(plotID))
	plot, err := scanPlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find plot: %w", err)
	}
	return plot, nil
}

// Update persists a mutated plot under its optimistic-concurrency token.
// Zero rows matched means either the row vanished or the version is stale;
// the follow-up existence probe tells the two cases apart.
func (s *PostgresStore) Update(ctx context.Context, plot *models.Plot) error {
	if err := plot.CheckInvariants(); err != nil {
		return err
	}
	query := `
		UPDATE plots
		SET area = $3, status = $4, price = $5, assigned_on = $6, notes = $7,
			special_features = $8, has_water = $9, has_electricity = $10,
			priority = $11, updated_at = $12, updated_by = $13, version = version + 1
		WHERE id = $1 AND version = $2 AND NOT deleted
	`
	result, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(plot.ID),
		plot.Version,
		plot.Area,
		string(plot.Status),
		nullDecimal(plot.Price),
		nullTime(plot.AssignedOn),
		plot.Notes,
		nullString(plot.SpecialFeatures),
		plot.HasWater,
		plot.HasElectricity,
		plot.Priority,
		plot.UpdatedAt,
		plot.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update plot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update plot: %w", err)
	}
	if affected == 0 {
		return s.missOrConflict(ctx, plot.ID)
	}
	plot.Version++
	return nil
}

// Remove soft-deletes the plot under its optimistic-concurrency token.
func (s *PostgresStore) Remove(ctx context.Context, plot *models.Plot) error {
	query := `
		UPDATE plots
		SET deleted = true, updated_at = NOW(), updated_by = $3, version = version + 1
		WHERE id = $1 AND version = $2 AND NOT deleted
	`
	result, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(plot.ID),
		plot.Version,
		plot.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("remove plot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove plot: %w", err)
	}
	if affected == 0 {
		return s.missOrConflict(ctx, plot.ID)
	}
	return nil
}

func (s *PostgresStore) missOrConflict(ctx context.Context, plotID id.PlotID) error {
	var exists bool
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM plots WHERE id = $1 AND NOT deleted)`,
		uuid.UUID(plotID),
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("probe plot: %w", err)
	}
	if exists {
		return sentinel.ErrConflict
	}
	return sentinel.ErrNotFound
}

// ListAvailableByDistrict returns non-deleted available plots of one
// district, ordered by number for deterministic candidate scans.
func (s *PostgresStore) ListAvailableByDistrict(ctx context.Context, districtID id.DistrictID) ([]*models.Plot, error) {
	query := `
		SELECT ` + plotColumns + ` FROM plots
		WHERE district_id = $1 AND status = $2 AND NOT deleted
		ORDER BY number
	`
	return s.queryPlots(ctx, query, uuid.UUID(districtID), string(models.PlotStatusAvailable))
}

// List returns all non-deleted plots, optionally scoped to one district.
func (s *PostgresStore) List(ctx context.Context, districtID *id.DistrictID) ([]*models.Plot, error) {
	if districtID != nil {
		query := `SELECT ` + plotColumns + ` FROM plots WHERE district_id = $1 AND NOT deleted ORDER BY number`
		return s.queryPlots(ctx, query, uuid.UUID(*districtID))
	}
	query := `SELECT ` + plotColumns + ` FROM plots WHERE NOT deleted ORDER BY number`
	return s.queryPlots(ctx, query)
}

func (s *PostgresStore) queryPlots(ctx context.Context, query string, args ...any) ([]*models.Plot, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query plots: %w", err)
	}
	defer rows.Close()

	var plots []*models.Plot
	for rows.Next() {
		plot, err := scanPlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plot: %w", err)
		}
		plots = append(plots, plot)
	}
	return plots, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlot(row rowScanner) (*models.Plot, error) {
	var plot models.Plot
	var plotID, districtID uuid.UUID
	var status string
	var price decimal.NullDecimal
	var assignedOn sql.NullTime
	var specialFeatures sql.NullString
	if err := row.Scan(
		&plotID,
		&districtID,
		&plot.Number,
		&plot.Area,
		&status,
		&price,
		&assignedOn,
		&plot.Notes,
		&specialFeatures,
		&plot.HasWater,
		&plot.HasElectricity,
		&plot.Priority,
		&plot.CreatedAt,
		&plot.CreatedBy,
		&plot.UpdatedAt,
		&plot.UpdatedBy,
		&plot.Deleted,
		&plot.Version,
	); err != nil {
		return nil, err
	}
	plot.ID = id.PlotID(plotID)
	plot.DistrictID = id.DistrictID(districtID)
	plot.Status = models.PlotStatus(status)
	if price.Valid {
		value := price.Decimal
		plot.Price = &value
	}
	if assignedOn.Valid {
		value := assignedOn.Time
		plot.AssignedOn = &value
	}
	plot.SpecialFeatures = specialFeatures.String
	return &plot, nil
}

func nullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
