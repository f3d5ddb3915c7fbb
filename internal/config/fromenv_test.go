package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("JIRA_BASE_URL", "https://example.atlassian.net")
	t.Setenv("JIRA_USERNAME", "user@example.com")
	t.Setenv("JIRA_API_TOKEN", "abc123")
	t.Setenv("JIRA_DEFAULT_PROJECT", "PROJ")
	t.Setenv("JIRA_TIMEOUT", "10s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Len(t, cfg.Probes, 1)

	assert.Equal(t, "jira", cfg.Probes[0].Name)
	require.NotNil(t, cfg.Probes[0].Jira)
	assert.Equal(t, "https://example.atlassian.net", cfg.Probes[0].Jira.BaseURL)
	assert.Equal(t, "user@example.com", cfg.Probes[0].Jira.Username)
	assert.Equal(t, "abc123", cfg.Probes[0].Jira.APIToken)
	assert.Equal(t, "PROJ", cfg.Probes[0].Jira.DefaultProject)
	assert.Equal(t, "10s", cfg.Probes[0].Jira.Timeout)
}

func TestFromEnvOptionalVariablesMayBeAbsent(t *testing.T) {
	t.Setenv("JIRA_BASE_URL", "https://example.atlassian.net")
	t.Setenv("JIRA_USERNAME", "user@example.com")
	t.Setenv("JIRA_API_TOKEN", "abc123")
	t.Setenv("JIRA_DEFAULT_PROJECT", "")
	t.Setenv("JIRA_TIMEOUT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Empty(t, cfg.Probes[0].Jira.DefaultProject)
	assert.Empty(t, cfg.Probes[0].Jira.Timeout)
}

func TestFromEnvMissingVariables(t *testing.T) {
	t.Setenv("JIRA_BASE_URL", "")
	t.Setenv("JIRA_USERNAME", "user@example.com")
	t.Setenv("JIRA_API_TOKEN", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JIRA_BASE_URL")
	assert.Contains(t, err.Error(), "JIRA_API_TOKEN")
	assert.NotContains(t, err.Error(), "JIRA_USERNAME")
}
