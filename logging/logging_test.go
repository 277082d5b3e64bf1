package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_Disabled(t *testing.T) {
	cleanup, err := SetupLogging("")
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, IsDebugMode())
	Infof("dropped %d", 1)
}

func TestSetupLogging_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path)
	require.NoError(t, err)

	assert.True(t, IsDebugMode())
	Debugf("panel: begin category %q", "any")
	Warnf("categories failed: %v", "boom")
	cleanup()
	assert.False(t, IsDebugMode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"debug"`)
	assert.Contains(t, string(data), `panel: begin category \"any\"`)
	assert.Contains(t, string(data), `"level":"warn"`)
	assert.Contains(t, string(data), `"app":"wrwatch"`)
}

func TestSetupLogging_BadPath(t *testing.T) {
	_, err := SetupLogging(filepath.Join(t.TempDir(), "missing", "debug.log"))
	assert.Error(t, err)
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { _, _ = SetupLogging("") })

	Errorf("export failed: %s", "disk full")
	Debug("renderTable called")

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "export failed: disk full")
	assert.Contains(t, buf.String(), "renderTable called")
}
