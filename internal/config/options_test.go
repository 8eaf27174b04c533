package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptions(t *testing.T) {
	dir := t.TempDir()

	opts, err := NewOptions(dir, "localhost", 9990, "secret")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(opts.WatchDir))
	assert.Equal(t, "localhost:9990", opts.APIAddr())
	assert.Equal(t, "http://localhost:9990/", opts.APIURL())
}

func TestNewOptions_MissingToken(t *testing.T) {
	_, err := NewOptions(t.TempDir(), "localhost", 9990, "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestResolveToken(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TOKEN=from-env\n"), 0o644))

	tests := []struct {
		name     string
		explicit string
		envFile  string
		fallback string
		want     string
	}{
		{"explicit wins", "flag", envFile, "cfg", "flag"},
		{"env file", "", envFile, "cfg", "from-env"},
		{"missing env file", "", filepath.Join(dir, "nope.env"), "cfg", "cfg"},
		{"nothing", "", filepath.Join(dir, "nope.env"), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveToken(tt.explicit, tt.envFile, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, DirExists(dir))

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.Error(t, DirExists(file))
	assert.Error(t, DirExists(filepath.Join(dir, "missing")))
}
