package limiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakePool struct {
	err     error
	lastSQL string
	args    []any
}

func (f *fakePool) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL = sql
	f.args = args
	return fakeRow{scan: func(dest ...any) error {
		if f.err != nil {
			return f.err
		}
		*(dest[0].(*time.Time)) = time.Now().Add(time.Minute)
		return nil
	}}
}

func TestPG_Acquire(t *testing.T) {
	t.Parallel()
	fp := &fakePool{}
	l := NewPGWithQuerier(fp, time.Minute)

	ok, err := l.Acquire(context.Background(), "resync:p1")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, strings.Contains(fp.lastSQL, "ON CONFLICT (key) DO UPDATE"))
	require.Equal(t, []any{"resync:p1", time.Minute}, fp.args)
}

func TestPG_AcquireHeld(t *testing.T) {
	t.Parallel()
	l := NewPGWithQuerier(&fakePool{err: pgx.ErrNoRows}, 0)
	require.Equal(t, DefaultWindow, l.window)

	ok, err := l.Acquire(context.Background(), "resync:p1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPG_AcquireError(t *testing.T) {
	t.Parallel()
	l := NewPGWithQuerier(&fakePool{err: errors.New("db boom")}, time.Minute)

	ok, err := l.Acquire(context.Background(), "resync:p1")
	require.ErrorContains(t, err, "db boom")
	require.False(t, ok)
}
