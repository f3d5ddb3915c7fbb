package config

import (
	"fmt"
	"os"
	"strings"
)

// FromEnv builds a probe configuration from the JIRA_* environment variables.
// The base URL, username and API token are required; all missing variables
// are reported in a single error.
func FromEnv() (*Preflight, error) {
	jira := Jira{}

	requiredVars := map[string]*string{
		"JIRA_BASE_URL":  &jira.BaseURL,
		"JIRA_USERNAME":  &jira.Username,
		"JIRA_API_TOKEN": &jira.APIToken,
	}

	var missingVars []string
	for env, ptr := range requiredVars {
		*ptr = os.Getenv(env)
		if *ptr == "" {
			missingVars = append(missingVars, env)
		}
	}

	if len(missingVars) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	jira.DefaultProject = os.Getenv("JIRA_DEFAULT_PROJECT")
	jira.Timeout = os.Getenv("JIRA_TIMEOUT")

	return &Preflight{
		Probes: []Probe{
			{Name: "jira", Jira: &jira},
		},
	}, nil
}
