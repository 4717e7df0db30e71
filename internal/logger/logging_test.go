package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput(t *testing.T) {
	defer SetOutput(os.Stderr)

	var buf bytes.Buffer
	SetOutput(&buf)
	l := Default("test")
	l.SetLevel(log.InfoLevel)
	l.Info("hello")
	assert.Contains(t, buf.String(), "test: hello")
}

func TestToFile(t *testing.T) {
	defer SetOutput(os.Stderr)
	level := log.GetLevel()
	defer log.SetLevel(level)

	path := filepath.Join(t.TempDir(), "logs", "hearme.log")
	closer, err := ToFile(path)
	require.NoError(t, err)

	log.SetLevel(log.WarnLevel)
	log.Warn("careful")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "careful")
}

func TestToFileDiscards(t *testing.T) {
	defer SetOutput(os.Stderr)
	closer, err := ToFile("")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.NotEqual(t, os.Stderr, Output())
}

func TestSetup(t *testing.T) {
	level := log.GetLevel()
	defer log.SetLevel(level)

	Setup(true)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	Setup(false)
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}
