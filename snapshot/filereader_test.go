package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/forestrie/go-nestedset/nestedsettesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `tree_id: 01947000-3456-780f-bfa9-29881e3bac88
records:
  - {id: 1, name: A, left: 1, right: 10}
  - {id: 2, name: B, left: 2, right: 5}
  - {id: 3, name: C, left: 6, right: 9}
  - {id: 4, name: D, left: 3, right: 4}
`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFileReader(t *testing.T) {
	tc := nestedsettesting.NewTestContext(t, nestedsettesting.TestConfig{TestLabelPrefix: "TestFileReader"})
	dir := t.TempDir()

	codec, err := NewCBORCodec()
	require.NoError(t, err)
	cborData, err := EncodeCBOR(codec, NewSnapshot(testTreeID, nestedsettesting.FoodRecords()))
	require.NoError(t, err)

	cborPath := writeFile(t, dir, "food.cbor", cborData)
	yamlPath := writeFile(t, dir, "scenario.yaml", []byte(scenarioYAML))
	ymlPath := writeFile(t, dir, "scenario.YML", []byte(scenarioYAML))
	txtPath := writeFile(t, dir, "scenario.txt", []byte(scenarioYAML))

	r, err := NewFileReader(tc.Log, nil)
	require.NoError(t, err)

	s, err := r.ReadSnapshot(cborPath)
	require.NoError(t, err)
	assert.Equal(t, testTreeID, s.TreeID)
	assert.Equal(t, nestedsettesting.FoodRecords(), s.Records)

	for _, path := range []string{yamlPath, ymlPath} {
		s, err = r.ReadSnapshot(path)
		require.NoError(t, err)
		assert.Equal(t, nestedsettesting.ScenarioRecords(), s.Records)
	}

	_, err = r.ReadSnapshot(txtPath)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = r.ReadSnapshot(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	limited, err := NewFileReader(tc.Log, &OSOpener{}, WithMaxRecords(3))
	require.NoError(t, err)
	_, err = limited.ReadSnapshot(yamlPath)
	assert.ErrorIs(t, err, ErrSnapshotTooLarge)
}

func TestFileSource(t *testing.T) {
	tc := nestedsettesting.NewTestContext(t, nestedsettesting.TestConfig{TestLabelPrefix: "TestFileSource"})
	path := writeFile(t, t.TempDir(), "scenario.yaml", []byte(scenarioYAML))

	r, err := NewFileReader(tc.Log, nil)
	require.NoError(t, err)
	tree, err := NewLoader(tc.Log).Load(context.Background(), r.FileSource(path))
	require.NoError(t, err)
	assert.Equal(t, "A", tree.Root().Name)
	assert.Equal(t, 4, tree.Len())
}

func TestFileReaderConcurrentLoads(t *testing.T) {
	tc := nestedsettesting.NewTestContext(t, nestedsettesting.TestConfig{TestLabelPrefix: "TestFileReaderConcurrentLoads"})

	codec, err := NewCBORCodec()
	require.NoError(t, err)
	data, err := EncodeCBOR(codec, NewSnapshot(testTreeID, nestedsettesting.FoodRecords()))
	require.NoError(t, err)
	path := writeFile(t, t.TempDir(), "food.cbor", data)

	// the default codec is shared by every load through r
	r, err := NewFileReader(tc.Log, nil)
	require.NoError(t, err)
	l := NewLoader(tc.Log)

	const loads = 8
	errs := make([]error, loads)
	roots := make([]string, loads)

	var wg sync.WaitGroup
	for i := range loads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := l.Load(context.Background(), r.FileSource(path))
			errs[i] = err
			if err == nil {
				roots[i] = tree.Root().Name
			}
		}()
	}
	wg.Wait()

	for i := range loads {
		require.NoError(t, errs[i])
		assert.Equal(t, "Food", roots[i])
	}
}

func TestFileReaderReplicaLayout(t *testing.T) {
	tc := nestedsettesting.NewTestContext(t, nestedsettesting.TestConfig{TestLabelPrefix: "TestFileReaderReplicaLayout"})

	codec, err := NewCBORCodec()
	require.NoError(t, err)
	data, err := EncodeCBOR(codec, NewSnapshot(testTreeID, nestedsettesting.FoodRecords()))
	require.NoError(t, err)

	root := t.TempDir()
	place := func(treeID string) string {
		dir := filepath.Join(root, "v1", "nestedsets", "tree", treeID)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		return writeFile(t, dir, SnapshotBlobName, data)
	}

	r, err := NewFileReader(tc.Log, nil)
	require.NoError(t, err)

	s, err := r.ReadSnapshot(place(testTreeID.String()))
	require.NoError(t, err)
	assert.Equal(t, testTreeID, s.TreeID)

	_, err = r.ReadSnapshot(place("01947000-0000-7000-8000-000000000001"))
	assert.ErrorIs(t, err, ErrTreeIDMismatch)

	// a tree directory that is not named by a uuid is not a replica
	_, err = r.ReadSnapshot(place("food"))
	assert.NoError(t, err)
}
