package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/forestrie/go-nestedset/nestedset"
	"github.com/forestrie/go-nestedset/nestedsettesting"
	"github.com/forestrie/go-nestedset/snapshot"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foodSnapshotFile writes the food catalogue as a CBOR snapshot.
func foodSnapshotFile(t *testing.T) string {
	t.Helper()
	codec, err := snapshot.NewCBORCodec()
	require.NoError(t, err)
	data, err := snapshot.EncodeCBOR(codec, snapshot.NewSnapshot(uuid.New(), nestedsettesting.FoodRecords()))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "food.cbor")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func execute(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()
	tc := nestedsettesting.NewTestContext(t, nestedsettesting.TestConfig{TestLabelPrefix: "nestedset"})

	var out bytes.Buffer
	cmd := newRootCmd(&app{cfg: cfg, log: tc.Log})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	food := foodSnapshotFile(t)
	cfg := Config{LogLevel: "NOOP", MaxRecords: 100}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "bfs",
			args: []string{"bfs", food},
			want: "1\tFood\t1\t18\n3\tFruit\t2\t11\n2\tMeat\t12\t17\n" +
				"5\tRed\t3\t6\n4\tYellow\t7\t10\n9\tBeef\t13\t14\n8\tPork\t15\t16\n" +
				"6\tCherry\t4\t5\n7\tBanana\t8\t9\n",
		},
		{
			name: "children",
			args: []string{"children", food, "3"},
			want: "5\tRed\t3\t6\n4\tYellow\t7\t10\n",
		},
		{
			name: "children of a leaf",
			args: []string{"children", food, "6"},
			want: "",
		},
		{
			name: "parent",
			args: []string{"parent", food, "7"},
			want: "4\tYellow\t7\t10\n",
		},
		{
			name: "parent of the root",
			args: []string{"parent", food, "1"},
			want: "1 is the root\n",
		},
		{
			name: "path",
			args: []string{"path", food, "1", "6"},
			want: "1\tFood\t1\t18\n3\tFruit\t2\t11\n5\tRed\t3\t6\n6\tCherry\t4\t5\n",
		},
		{
			name: "render",
			args: []string{"render", food},
			want: "Food\n  Fruit\n    Red\n      Cherry\n    Yellow\n      Banana\n  Meat\n    Beef\n    Pork\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, cfg, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	food := foodSnapshotFile(t)
	cfg := Config{LogLevel: "NOOP", MaxRecords: 100}

	_, err := execute(t, cfg, "parent", food, "99")
	assert.ErrorIs(t, err, nestedset.ErrNotFound)

	_, err = execute(t, cfg, "path", food, "2", "6")
	assert.ErrorIs(t, err, nestedset.ErrNotAncestor)

	_, err = execute(t, cfg, "children", food, "fruit")
	assert.Error(t, err)

	_, err = execute(t, Config{LogLevel: "NOOP", MaxRecords: 4}, "bfs", food)
	assert.ErrorIs(t, err, snapshot.ErrSnapshotTooLarge)

	twoRoots := filepath.Join(t.TempDir(), "roots.yaml")
	require.NoError(t, os.WriteFile(twoRoots, []byte(
		"records:\n  - {id: 1, name: A, left: 1, right: 10}\n  - {id: 2, name: B, left: 11, right: 20}\n"), 0o644))
	_, err = execute(t, cfg, "bfs", twoRoots)
	assert.ErrorIs(t, err, nestedset.ErrMultipleRoots)

	_, err = execute(t, cfg, "bfs")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("NESTEDSET_LOG_LEVEL", "")
	t.Setenv("NESTEDSET_MAX_RECORDS", "")
	os.Unsetenv("NESTEDSET_LOG_LEVEL")
	os.Unsetenv("NESTEDSET_MAX_RECORDS")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "INFO", MaxRecords: 1 << 20}, cfg)

	t.Setenv("NESTEDSET_LOG_LEVEL", "DEBUG")
	t.Setenv("NESTEDSET_MAX_RECORDS", "64")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "DEBUG", MaxRecords: 64}, cfg)

	t.Setenv("NESTEDSET_MAX_RECORDS", "many")
	_, err = LoadConfig()
	assert.Error(t, err)
}
