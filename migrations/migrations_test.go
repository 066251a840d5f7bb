package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_PairsUpAndDown(t *testing.T) {
	up, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	down, err := fs.Glob(FS, "*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, up)
	assert.Len(t, down, len(up))

	schema, err := fs.ReadFile(FS, "000001_create_comptes.up.sql")
	require.NoError(t, err)
	for _, column := range []string{"id", "solde", "type", "date_creation"} {
		assert.Contains(t, string(schema), column)
	}
}
