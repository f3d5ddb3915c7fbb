package config

import (
	"os"

	"github.com/hashicorp/hcl"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func (preflightConfig *Preflight) GenerateFromConfigDir(configDir string) error {
	matches, err := findFilesInPath(configDir)
	if err != nil {
		return err
	}

	for _, m := range matches {
		log.Infof("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return errors.Wrapf(err, "failed to read configuration file %q", m)
		}

		if err := hcl.Unmarshal(contents, preflightConfig); err != nil {
			return errors.Wrapf(err, "could not parse configuration file %q", m)
		}
	}

	return nil
}
