package stationfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprawl/pkg/sharedTypes"
)

func useTempDataDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	old := DataDir
	DataDir = dir
	t.Cleanup(func() { DataDir = old })
	return dir
}

func TestAvailableDataFiles(t *testing.T) {
	dir := useTempDataDir(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stations.csv"), []byte("id,name,long,lat\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	files, err := AvailableDataFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "stations.csv")}, files)
}

func TestAvailableDataFilesMissingDir(t *testing.T) {
	dir := useTempDataDir(t)
	DataDir = filepath.Join(dir, "does-not-exist")

	_, err := AvailableDataFiles()
	assert.Error(t, err)
}

func TestHasDataset(t *testing.T) {
	dir := useTempDataDir(t)

	assert.False(t, HasDataset())

	require.NoError(t, os.WriteFile(filepath.Join(dir, StationsFile), []byte("id,name,long,lat\n"), 0o644))
	assert.False(t, HasDataset())

	require.NoError(t, os.WriteFile(filepath.Join(dir, JoinFile), []byte("station_id1,station_id2\n"), 0o644))
	assert.True(t, HasDataset())
}

func TestSyncDatasetRequiresEnv(t *testing.T) {
	for _, key := range []string{"AWS_DEFAULT_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"} {
		t.Setenv(key, "")
	}

	_, err := SyncDataset(sharedTypes.Dataset{Title: "japan-rail", Bucket: "some-bucket", Folder: "rail/"})
	assert.Error(t, err)
}
