package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed   bool
	rolledBack  bool
	rollbackErr error
}

func (f *fakeTx) Commit(context.Context) error { f.committed = true; return nil }

func (f *fakeTx) Rollback(context.Context) error { f.rolledBack = true; return f.rollbackErr }

type fakeStarter struct {
	tx   *fakeTx
	opts pgx.TxOptions
	err  error
}

func (s *fakeStarter) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	s.opts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.tx, nil
}

func TestWithTransaction_Commits(t *testing.T) {
	db := &fakeStarter{tx: &fakeTx{}}

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error { return nil })

	require.NoError(t, err)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
	assert.Equal(t, pgx.ReadCommitted, db.opts.IsoLevel)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db := &fakeStarter{tx: &fakeTx{}}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.True(t, db.tx.rolledBack)
	assert.False(t, db.tx.committed)
}

func TestWithTransaction_RollbackFailureKeepsCause(t *testing.T) {
	rbErr := errors.New("connection lost")
	db := &fakeStarter{tx: &fakeTx{rollbackErr: rbErr}}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, rbErr)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	db := &fakeStarter{tx: &fakeTx{}}

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = WithTransaction(context.Background(), db, func(pgx.Tx) error { panic("kaboom") })
	})
	assert.True(t, db.tx.rolledBack)
}

func TestWithTransactionOptions_BeginError(t *testing.T) {
	db := &fakeStarter{err: errors.New("pool closed")}

	err := WithTransactionOptions(context.Background(), db, pgx.TxOptions{IsoLevel: pgx.Serializable}, func(pgx.Tx) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorContains(t, err, "begin tx")
	assert.Equal(t, pgx.Serializable, db.opts.IsoLevel)
}
