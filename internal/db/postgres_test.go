package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidIdentifier(t *testing.T) {
	t.Parallel()

	valid := []string{"public", "healthcare_production", "_tmp", "t1", "a$b"}
	for _, name := range valid {
		assert.True(t, ValidIdentifier(name), "expected %q to be valid", name)
	}

	invalid := []string{"", "1table", "bad-name", `pg"catalog`, "a b", "x;drop table y", "schema.table"}
	for _, name := range invalid {
		assert.False(t, ValidIdentifier(name), "expected %q to be invalid", name)
	}
}

func TestQualifiedTable(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		got, err := QualifiedTable("healthcare_production", "healthcare_providers")
		require.NoError(t, err)
		assert.Equal(t, `"healthcare_production"."healthcare_providers"`, got)
	})

	t.Run("unsafe_schema", func(t *testing.T) {
		_, err := QualifiedTable(`x";--`, "t")
		require.Error(t, err)
	})

	t.Run("unsafe_table", func(t *testing.T) {
		_, err := QualifiedTable("public", "t; DROP TABLE t")
		require.Error(t, err)
	})
}
