package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), c)
	c, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10000, c.Size)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 64\nseed: 7\nworkloads: [ascending]\ncontainers: [avl, llrb]\n"), 0644))
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, c.Size)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, []string{"ascending"}, c.Workloads)
	assert.Equal(t, []string{"avl", "llrb"}, c.Containers)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: [1"), 0644))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")

	for _, c := range []*Config{
		{Size: 0, LogLevel: "info"},
		{Size: 1, Workloads: []string{"zigzag"}, LogLevel: "info"},
		{Size: 1, Containers: []string{"splay"}, LogLevel: "info"},
		{Size: 1, LogLevel: "loud"},
	} {
		assert.Error(t, c.Validate())
	}
}
