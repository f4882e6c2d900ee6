package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-timeout", "5s",
		"-insecure",
		"-token", "tok",
		"-cert", "cert.pem",
		"-key", "key.pem",
		"-login-timeout", "1m",
		"-log", "client.log",
		"update", "3", `{"title":"x"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.InsecureTLS)
	assert.Equal(t, "tok", cfg.Auth.AccessToken)
	assert.Equal(t, "cert.pem", cfg.Auth.CertFile)
	assert.Equal(t, "key.pem", cfg.Auth.KeyFile)
	assert.Equal(t, time.Minute, cfg.Auth.LoginTimeout)
	assert.Equal(t, "client.log", cfg.Log.FilePath)
	assert.Equal(t, []string{"update", "3", `{"title":"x"}`}, cfg.Args)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Auth{}, cfg.Auth)
	assert.Equal(t, Log{}, cfg.Log)
	assert.Empty(t, cfg.Args)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-timeout", "later"})
	assert.Error(t, err)
}
