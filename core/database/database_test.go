package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "catalog",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		var fk int
		require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
		assert.Equal(t, 1, fk)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})
}

func TestDialector(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{DriverMySQL, "mysql"},
		{"", "mysql"},
		{DriverPostgres, "postgres"},
		{DriverSQLite, "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			d, err := Dialector(Config{Driver: tt.driver, Host: "localhost", Port: 1, Name: "catalog"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "catalog.db?_foreign_keys=on", sqliteDSN("catalog.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
}
