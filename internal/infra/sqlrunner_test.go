package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	queries []string
	args    [][]any
	err     error
}

func (e *recordingExecutor) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	e.queries = append(e.queries, query)
	e.args = append(e.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), e.err
}

func (e *recordingExecutor) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	e.queries = append(e.queries, query)
	e.args = append(e.args, args)
	return errorRow{err: pgx.ErrNoRows}
}

func (e *recordingExecutor) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	e.queries = append(e.queries, query)
	e.args = append(e.args, args)
	return nil, e.err
}

const markedQuery = `--sql 0f3c2a9e-5b41-4c8d-9e27-6a1d7b3f4c10
select 1;
`

func TestSQLRunnerStripsMarker(t *testing.T) {
	exec := &recordingExecutor{}
	runner := NewSQLRunner(exec, zerolog.Nop())

	_, err := runner.Exec(context.Background(), markedQuery, "a", 1)
	require.NoError(t, err)

	require.Len(t, exec.queries, 1)
	assert.Equal(t, "select 1;", exec.queries[0])
	assert.Equal(t, []any{"a", 1}, exec.args[0])
}

func TestSQLRunnerRejectsUnmarkedQuery(t *testing.T) {
	exec := &recordingExecutor{}
	runner := NewSQLRunner(exec, zerolog.Nop())

	_, err := runner.Exec(context.Background(), "select 1;")
	assert.ErrorIs(t, err, ErrMissingMarker)

	err = runner.QueryRow(context.Background(), "--sql not-a-uuid\nselect 1;").Scan()
	assert.ErrorIs(t, err, ErrMissingMarker)

	_, err = runner.Query(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingMarker)

	assert.Empty(t, exec.queries)
}

func TestSQLRunnerPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	runner := NewSQLRunner(&recordingExecutor{err: boom}, zerolog.Nop())

	_, err := runner.Exec(context.Background(), markedQuery)
	assert.ErrorIs(t, err, boom)

	_, err = runner.Query(context.Background(), markedQuery)
	assert.ErrorIs(t, err, boom)

	err = runner.QueryRow(context.Background(), markedQuery).Scan()
	assert.True(t, IsNoRows(err))
}
