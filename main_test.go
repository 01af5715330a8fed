package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLogDiscardsWithoutPath(t *testing.T) {
	log, closeLog, err := openLog("")
	require.NoError(t, err)
	defer closeLog()
	assert.NotPanics(t, func() { log.Info("nowhere") })
}

func TestOpenLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gduel.log")
	log, closeLog, err := openLog(path)
	require.NoError(t, err)

	log.Debug("hit", "target", "opponent")
	closeLog()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=hit")
	assert.Contains(t, string(b), "target=opponent")
}

func TestRunRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: -1\n"), 0o644))

	err := run(path, "", true, 0)
	assert.Error(t, err)
}
