package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so logs/ never lands in the tree
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLogging_DiscardsWithoutDebug(t *testing.T) {
	inTempDir(t)

	f := setupLogging(false)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "logs directory must not be created")
}

func TestSetupLogging_WritesFileWithDebug(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	log.Println("[TEST] hello")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[TEST] hello")

	out := log.Writer()
	assert.NotEqual(t, os.Stdout, out)
	assert.NotEqual(t, os.Stderr, out)
}

func TestSetupLogging_AppendsAcrossRuns(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	require.NotNil(t, f)
	log.Println("first")
	f.Close()

	f = setupLogging(true)
	require.NotNil(t, f)
	log.Println("second")
	f.Close()

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestSetupLogging_RotatesOversizedFile(t *testing.T) {
	inTempDir(t)

	require.NoError(t, os.MkdirAll(logDir, 0755))
	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "maze-explorer-") {
			rotated = append(rotated, e.Name())
		}
	}
	assert.Len(t, rotated, 1)

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}
