package documents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalehouse/internal/shared/config"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(&config.DocumentsConfig{
		Root:       filepath.Join(t.TempDir(), "tickets_pdf"),
		ReportsDir: "reports_pdf",
	})
}

func TestStore_PathFor(t *testing.T) {
	store := testStore(t)
	path := store.PathFor(2025, "DT-2025-000042")
	assert.Equal(t, filepath.Join(store.root, "2025", "DT-2025-000042.pdf"), path)
}

func TestStore_WriteReadRemove(t *testing.T) {
	store := testStore(t)
	path := store.PathFor(2025, "DT-2025-000001")
	data := []byte("%PDF-1.4 test")

	require.NoError(t, store.Write(path, data))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	t.Run("no temp files are left behind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "DT-2025-000001.pdf", entries[0].Name())
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, store.Remove(path))
		require.NoError(t, store.Remove(path))
		_, err := store.Read(path)
		assert.Error(t, err)
	})
}

func TestStore_WriteOverwrites(t *testing.T) {
	store := testStore(t)
	path := store.ReportPathFor("report-20250601-20250614.pdf")

	require.NoError(t, store.Write(path, []byte("first")))
	require.NoError(t, store.Write(path, []byte("second")))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}
