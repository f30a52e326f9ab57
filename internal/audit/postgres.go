package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "kleingarten/pkg/domain"
	txcontext "kleingarten/pkg/platform/tx"
)

// PostgresStore implements Store using the transactional outbox pattern.
// Events are written to the outbox table inside the command's transaction and
// published to Kafka by the relay; an event therefore exists exactly when the
// mutation it describes committed.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres creates a PostgreSQL audit store that writes to the outbox.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Append writes an audit event to the outbox table for Kafka publishing.
func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}
	query := `
		INSERT INTO audit_outbox (id, aggregate_id, action, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.execer(ctx).ExecContext(ctx, query,
		event.ID,
		uuid.UUID(event.PlotID),
		event.Action,
		payload,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert outbox entry: %w", err)
	}
	return nil
}

// ListByPlot returns the audit trail for one plot, oldest first.
func (s *PostgresStore) ListByPlot(ctx context.Context, plotID id.PlotID) ([]Event, error) {
	query := `
		SELECT payload FROM audit_outbox
		WHERE aggregate_id = $1
		ORDER BY created_at
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, uuid.UUID(plotID))
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// UnpublishedBatch returns up to limit outbox rows not yet relayed to Kafka.
func (s *PostgresStore) UnpublishedBatch(ctx context.Context, limit int) ([]OutboxEntry, error) {
	query := `
		SELECT id, action, payload FROM audit_outbox
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("load unpublished outbox rows: %w", err)
	}
	defer rows.Close()

	var entries []OutboxEntry
	for rows.Next() {
		var entry OutboxEntry
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Payload); err != nil {
			return nil, fmt.Errorf("scan outbox row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// MarkPublished stamps outbox rows after a successful Kafka produce.
func (s *PostgresStore) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE audit_outbox SET published_at = NOW() WHERE id = ANY($1::uuid[])`
	if _, err := s.execer(ctx).ExecContext(ctx, query, pqUUIDArray(ids)); err != nil {
		return fmt.Errorf("mark outbox rows published: %w", err)
	}
	return nil
}

// OutboxEntry is one row awaiting relay to Kafka.
type OutboxEntry struct {
	ID      uuid.UUID
	Action  string
	Payload []byte
}

// pqUUIDArray renders UUIDs as a text array usable with = ANY($1).
func pqUUIDArray(ids []uuid.UUID) any {
	values := make([]string, len(ids))
	for i, entryID := range ids {
		values[i] = entryID.String()
	}
	return pq.Array(values)
}
