package main

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintReportsMissingMarker(t *testing.T) {
	src := "package q\n\nconst QBad = `select 1;`\n\nconst Label = \"please update your profile\"\n"
	l := newLinter()
	require.NoError(t, l.lintSource("q.go", src))
	require.Len(t, l.violations, 1)
	assert.Equal(t, "QBad", l.violations[0].name)
	assert.Equal(t, 3, l.violations[0].line)
}

func TestLintReportsDuplicateMarker(t *testing.T) {
	src := "package q\n\n" +
		"const QOne = `--sql 11111111-2222-3333-4444-555555555555\nselect 1;`\n" +
		"const QTwo = `--sql 11111111-2222-3333-4444-555555555555\nselect 2;`\n"
	l := newLinter()
	require.NoError(t, l.lintSource("q.go", src))
	require.Len(t, l.violations, 1)
	assert.Equal(t, "QTwo", l.violations[0].name)
	assert.True(t, strings.Contains(l.violations[0].message, "already used"))
}

func TestLintAcceptsMarkedStatements(t *testing.T) {
	src := "package q\n\nconst (\n" +
		"\tQA = `--sql 0f0f0f0f-1111-2222-3333-444444444444\ninsert into t values (1);`\n" +
		"\tQB = \"--sql 0f0f0f0f-1111-2222-3333-555555555555\\nwith x as (select 1) select * from x;\"\n" +
		")\n"
	l := newLinter()
	require.NoError(t, l.lintSource("q.go", src))
	assert.Empty(t, l.violations)
}

func TestInlineQueriesAreClean(t *testing.T) {
	_, here, _, ok := runtime.Caller(0)
	require.True(t, ok)
	l := newLinter()
	require.NoError(t, walk(l, filepath.Join(filepath.Dir(here), "..", "..", "sqlinline")))
	assert.Empty(t, l.violations)
	assert.NotEmpty(t, l.seen)
}
