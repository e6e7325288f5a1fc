package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDialectorSelection(t *testing.T) {
	require.Equal(t, "sqlite", dialectorFor("").Name())
	require.Equal(t, "postgres", dialectorFor("postgres://u:p@host:5432/petcare").Name())
	require.Equal(t, "postgres", dialectorFor("postgresql://u:p@host:5432/petcare").Name())
	require.Equal(t, "mysql", dialectorFor("mysql://u:p@host:3306/petcare").Name())
	require.Equal(t, "mysql", dialectorFor("u:p@tcp(host:3306)/petcare").Name())
}

func TestNormalizePostgresURL(t *testing.T) {
	require.Equal(t,
		"postgresql://u:p@host:5432/petcare",
		NormalizePostgresURL("postgres://u:p@host:5432/petcare"))
	require.Equal(t,
		"postgresql://u:p@host:5432/petcare",
		NormalizePostgresURL("postgresql://u:p@host:5432/petcare"))
	require.Equal(t, "other", NormalizePostgresURL("other"))
}
