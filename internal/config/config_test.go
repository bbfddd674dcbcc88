package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/founderpulse/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "founderpulse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 14, cfg.Engine.TrendWindowDays)
	assert.Equal(t, 7, cfg.Engine.StatsWindowDays)
	assert.Equal(t, 500, cfg.Engine.NotesMaxLen)
	assert.Equal(t, 6, cfg.Scheduler.DailyHour)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, 256, cfg.LLM.Tasks[llm.TaskBurnoutInsight].MaxTokens)
	assert.Equal(t, "founderpulse.db", filepath.Base(cfg.DB.Path))

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
db:
  path: /tmp/fp.db
user:
  id: founder-7
timezone: Europe/Lisbon
llm:
  enabled: true
  model: mistral
engine:
  trend_window_days: 21
`)
	t.Setenv("FOUNDERPULSE_USER_ID", "from-env")
	t.Setenv("FOUNDERPULSE_SCHEDULER_DAILY_HOUR", "22")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fp.db", cfg.DB.Path)
	assert.Equal(t, "from-env", cfg.User.ID, "env beats file")
	assert.Equal(t, 22, cfg.Scheduler.DailyHour)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "mistral", cfg.LLM.Model)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Endpoint)
	assert.Equal(t, 21, cfg.Engine.TrendWindowDays)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Lisbon", loc.String())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
timezone: Mars/Olympus
log:
  level: loud
scheduler:
  daily_hour: 24
engine:
  stats_window_days: 400
`)
	_, err := Load(path)
	require.Error(t, err)
	for _, want := range []string{"timezone", "log.level", "daily_hour", "stats_window_days"} {
		assert.Contains(t, err.Error(), want)
	}
}
