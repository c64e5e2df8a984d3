package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ACCOUNT_UID", "10001")
	t.Setenv("ACCOUNT_TOKEN", "tok")
	t.Setenv("ACCOUNT_TMID", "tmid")
	t.Setenv("PUBLISH_TOKEN", "ghp_x")
	t.Setenv("PUBLISH_DEST_ID", "abc123")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "10001", cfg.Account.UID)
	require.Equal(t, "tok", cfg.Account.Token)
	require.Equal(t, "tmid", cfg.Account.TMID)
	require.Equal(t, "ghp_x", cfg.Publish.Token)
	require.Equal(t, "abc123", cfg.Publish.DestID)
	require.Equal(t, "https://bbs-api-os.hoyolab.com", cfg.PlatformBaseURL)
	require.Equal(t, "https://api.github.com", cfg.PublishAPIURL)
	require.Equal(t, "en-us", cfg.Locale)
	require.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.StrictExit)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PLATFORM_BASE_URL", "http://127.0.0.1:9000/")
	t.Setenv("PLATFORM_LOCALE", "zh-CN")
	t.Setenv("HTTP_TIMEOUT", "15s")
	t.Setenv("STRICT_EXIT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9000", cfg.PlatformBaseURL)
	require.Equal(t, "zh-cn", cfg.Locale)
	require.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	require.True(t, cfg.StrictExit)
}

func TestLoadMissingRequired(t *testing.T) {
	for _, k := range []string{"ACCOUNT_UID", "ACCOUNT_TOKEN", "ACCOUNT_TMID", "PUBLISH_TOKEN", "PUBLISH_DEST_ID"} {
		t.Run(k, func(t *testing.T) {
			setRequired(t)
			t.Setenv(k, "")

			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), k)
		})
	}
}

func TestLoadBadLocale(t *testing.T) {
	setRequired(t)
	t.Setenv("PLATFORM_LOCALE", "not a locale")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PLATFORM_LOCALE")
}

func TestLoadLocaleKeptAsGiven(t *testing.T) {
	setRequired(t)
	// iw es el código legacy de hebreo; no se reescribe a "he"
	t.Setenv("PLATFORM_LOCALE", "iw-IL")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "iw-il", cfg.Locale)
}
