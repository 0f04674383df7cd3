package config_test

import (
	"marketplace/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, 3, cfg.Moderation.ReportThreshold)
	require.Equal(t, 24*time.Hour, cfg.Moderation.StaleAfter)
	require.EqualValues(t, 500, cfg.Moderation.AutoCloseBatchSize)
	require.Equal(t, "system_user", cfg.Moderation.SystemUsername)
	require.Empty(t, cfg.Moderation.StatusOnDecision)
	require.Equal(t, 5*time.Second, cfg.Redis.QueueCacheTTL)
	require.Equal(t, "*/15 * * * *", cfg.Worker.AutoCloseSchedule)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
moderation:
  reportThreshold: 5
  statusOnDecision: UNDER_REVIEW
http:
  allowedOrigins: ["https://admin.example.com"]
`))
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Moderation.ReportThreshold)
	require.Equal(t, "UNDER_REVIEW", cfg.Moderation.StatusOnDecision)
	require.Equal(t, []string{"https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_RejectsClosedOnDecision(t *testing.T) {
	_, err := config.Load(writeConfig(t, "moderation:\n  statusOnDecision: CLOSED\n"))
	require.Error(t, err)

	_, err = config.Load(writeConfig(t, "moderation:\n  statusOnDecision: SOMETHING\n"))
	require.Error(t, err)

	_, err = config.Load(writeConfig(t, "moderation:\n  reportThreshold: -1\n"))
	require.Error(t, err)
}
