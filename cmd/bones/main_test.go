package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLogCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "project-bones", "bones.log")

	w, err := openLog(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestOpenLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bones.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	w, err := openLog(path)
	require.NoError(t, err)
	_, _ = w.Write([]byte("new\n"))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(data))
}

func TestOpenLogEmptyPathDiscards(t *testing.T) {
	w, err := openLog("")
	require.NoError(t, err)
	n, err := w.Write([]byte("dropped"))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, w.Close())
}

func TestLoadLevel(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"empty path is demo floor", "", "floor_1", false},
		{"yaml spawn list", "name: crypt\nspawns:\n  - id: Player_start\n    x: 0\n    y: 0\n", "crypt", false},
		{"missing id rejected", "name: bad\nspawns:\n  - x: 1\n", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := ""
			if tc.body != "" {
				path = filepath.Join(t.TempDir(), "level.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			}
			lv, err := loadLevel(path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, lv.Name)
		})
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := loadLevel(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
