package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id TEXT PRIMARY KEY, title_en TEXT, sort_order INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["id"])
	assert.Equal(t, "text", colMap["title_en"])
	assert.Equal(t, "integer", colMap["sort_order"])

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE variants (id TEXT PRIMARY KEY, item_id TEXT)").Error)

	missing, err := MissingColumns(db, "variants", []string{"id", "item_id", "name_en"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name_en"}, missing)
}
