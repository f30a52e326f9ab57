//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// schema is the full DDL for the engine's tables. Integration tests apply it
// once per container; production deployments manage it with migrations.
const schema = `
CREATE TABLE IF NOT EXISTS districts (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	status      TEXT NOT NULL,
	plot_count  INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS plots (
	id               UUID PRIMARY KEY,
	district_id      UUID NOT NULL REFERENCES districts (id),
	number           TEXT NOT NULL,
	area             NUMERIC(10,2) NOT NULL,
	status           TEXT NOT NULL,
	price            NUMERIC(12,2),
	assigned_on      TIMESTAMPTZ,
	notes            TEXT NOT NULL DEFAULT '',
	special_features TEXT,
	has_water        BOOLEAN NOT NULL DEFAULT FALSE,
	has_electricity  BOOLEAN NOT NULL DEFAULT FALSE,
	priority         INTEGER NOT NULL DEFAULT 0,
	created_at       TIMESTAMPTZ NOT NULL,
	created_by       TEXT NOT NULL DEFAULT '',
	updated_at       TIMESTAMPTZ NOT NULL,
	updated_by       TEXT NOT NULL DEFAULT '',
	deleted          BOOLEAN NOT NULL DEFAULT FALSE,
	version          BIGINT NOT NULL DEFAULT 1
);

-- Plot numbers are unique per district among live rows only, so a number
-- freed by deletion can be reused.
CREATE UNIQUE INDEX IF NOT EXISTS plots_district_number_live
	ON plots (district_id, number) WHERE NOT deleted;

CREATE TABLE IF NOT EXISTS persons (
	id    UUID PRIMARY KEY,
	name  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS applications (
	id         UUID PRIMARY KEY,
	person_id  UUID,
	plot_id    UUID,
	status     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS audit_outbox (
	id            UUID PRIMARY KEY,
	aggregate_id  UUID NOT NULL,
	action        TEXT NOT NULL,
	payload       JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	published_at  TIMESTAMPTZ
);
`

// PostgresContainer wraps a testcontainers Postgres instance with the engine
// schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// TruncateTables empties the given tables. Use between tests for isolation.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", "))
	_, err := p.DB.ExecContext(ctx, query)
	return err
}

// Manager shares one Postgres container across test suites in a package run.
// Ryuk reaps the container after the test process exits.
type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
}

var manager = &Manager{}

// GetManager returns the process-wide container manager.
func GetManager() *Manager {
	return manager
}

// GetPostgres returns the shared Postgres container, starting it on first use.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.postgres != nil {
		return m.postgres
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("kleingarten_test"),
		tcpostgres.WithUsername("kleingarten"),
		tcpostgres.WithPassword("kleingarten"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	m.postgres = &PostgresContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
	return m.postgres
}
