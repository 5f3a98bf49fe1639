package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"watchtrainer/internal/platform/fsutil"
)

func TestWriteFileAtomicReplacesContent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	require.NoError(t, fsutil.WriteFileAtomic(path, []byte(`{"v":1}`)))
	require.NoError(t, fsutil.WriteFileAtomic(path, []byte(`{"v":2}`)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"v":2}`, string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}
