package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ResolveEnv replaces values of the form "ENV:NAME" with the contents of the
// environment variable NAME. All other values pass through unchanged.
func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func SetDefaultStringIfEmpty(in, defaultValue, field, probeName string) string {
	if len(in) == 0 {
		log.Infof("probe %q uses default value %q for field %q", probeName, defaultValue, field)
		return defaultValue
	}
	return in
}
