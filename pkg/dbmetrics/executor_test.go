package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct{}

func (fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) { return nil, nil }
func (fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) { return nil, nil }
func (fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row        { return nil }
func (fakeTx) Commit() error                                                          { return nil }
func (fakeTx) Rollback() error                                                        { return nil }

func TestGetExecutor(t *testing.T) {
	var db DBExecutor = fakeTx{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, db, GetExecutor(ctx, db))

	tx := &fakeTx{}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM bookings"))
	assert.Equal(t, "insert", operation("  INSERT INTO bookings (id) VALUES ($1)"))
	assert.Equal(t, "update", operation("UPDATE\nbookings SET"))
}
