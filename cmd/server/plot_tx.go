package main

import (
	"context"
	"database/sql"
	"time"

	dErrors "kleingarten/pkg/domain-errors"
	platformtx "kleingarten/pkg/platform/tx"
)

const defaultPlotTxTimeout = 5 * time.Second

// plotPostgresTx runs a command's store calls inside one SQL transaction.
// The transaction travels in the context; the postgres stores pick it up
// and fall back to their own pool otherwise.
type plotPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newPlotPostgresTx(db *sql.DB) *plotPostgresTx {
	return &plotPostgresTx{db: db}
}

func (t *plotPostgresTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultPlotTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(platformtx.WithTx(ctx, tx)); err != nil {
		return err
	}

	return tx.Commit()
}
