package bootstrap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CateringPlanner_Go/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_10-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), []byte("{}"), 0600))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 9)
	assert.NotContains(t, logs, "session_2024-01-01_10-00-00.log")
	assert.NotContains(t, logs, "session_2024-01-03_10-00-00.log")
	assert.Contains(t, logs, "session_2024-01-12_10-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "event_deadletter.jsonl"))
}

func TestCleanupLogs_MissingDirIsIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		cleanupLogs(filepath.Join(t.TempDir(), "missing"), 9)
	})
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	cfg := &config.Config{
		LogDir:      filepath.Join(t.TempDir(), "logs"),
		LogLevel:    "info",
		LogFormat:   "text",
		Environment: "test",
		ServiceName: "catering-planner",
	}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	matches, err := filepath.Glob(filepath.Join(cfg.LogDir, "session_*.log"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestInitLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "info", LogFormat: "json", ServiceName: "svc", Environment: "prod", Storage: "memory"}

	initLogger(cfg, &buf)

	assert.Contains(t, buf.String(), `"msg":"`+LogMsgStartingService+`"`)
	assert.Contains(t, buf.String(), `"storage":"memory"`)
	assert.NotContains(t, buf.String(), LogMsgConfigurationLoaded)
}
