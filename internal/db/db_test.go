package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".wardrobe", "wardrobe.db")

	conn, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = os.Stat(path)
	assert.NoError(t, err)

	var mode string
	require.NoError(t, conn.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenDB_SetsBusyTimeout(t *testing.T) {
	conn := openTestDB(t)

	var timeout int
	require.NoError(t, conn.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}
