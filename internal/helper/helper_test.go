package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnv(t *testing.T) {
	t.Setenv("PREFLIGHT_TEST_VALUE", "resolved")

	assert.Equal(t, "resolved", ResolveEnv("ENV:PREFLIGHT_TEST_VALUE"))
	assert.Equal(t, "plain value", ResolveEnv("plain value"))
	assert.Equal(t, "", ResolveEnv("ENV:PREFLIGHT_TEST_UNSET"))
}

func TestSetDefaultStringIfEmpty(t *testing.T) {
	assert.Equal(t, "30s", SetDefaultStringIfEmpty("", "30s", "timeout", "jira"))
	assert.Equal(t, "10s", SetDefaultStringIfEmpty("10s", "30s", "timeout", "jira"))
}
