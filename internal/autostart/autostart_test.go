package autostart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"watch", "--dir", "/home/me/scripts", "--host", "localhost", "--port", "9990", "--token", "abc"},
		WatchArgs("/home/me/scripts", "localhost", 9990, "abc"))

	assert.Equal(t, []string{"watch", "--dir", "/s"}, WatchArgs("/s", "", 0, ""))
}

func TestCommandLine(t *testing.T) {
	got := commandLine("/usr/local/bin/bbsync", []string{"watch", "--dir", "/home/me/my scripts"})
	assert.Equal(t, `/usr/local/bin/bbsync watch --dir "/home/me/my scripts"`, got)
}

func TestWriteService(t *testing.T) {
	path := filepath.Join(t.TempDir(), serviceName)
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, writeService(f, "/home/me", "/bin/bbsync watch --dir /s"))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Service]")
	assert.Contains(t, string(data), "ExecStart=/bin/bbsync watch --dir /s")
	assert.Contains(t, string(data), "WorkingDirectory=/home/me")
}

func TestLinuxIsInstalled(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	l := &LinuxAutoStarter{}

	installed, err := l.IsInstalled()
	require.NoError(t, err)
	assert.False(t, installed)

	path, err := l.servicePath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("[Unit]\n"), 0644))

	installed, err = l.IsInstalled()
	require.NoError(t, err)
	assert.True(t, installed)
}
