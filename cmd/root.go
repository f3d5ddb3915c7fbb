package cmd

import (
	"github.com/jiratools/preflight/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configDir string
var verbose bool

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "", "read probe configuration from .hcl files in this directory instead of the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:     "preflight",
	Short:   "Preflight - connectivity check for Jira deployments",
	Long:    "Preflight verifies that a Jira instance is reachable and that the configured credentials authenticate, before dependent services are started",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Warn("Running 'preflight' without any arguments - defaulting to 'check'. This behaviour may change in future releases!")
		check.Run(cmd, args)
	},
}

// loadConfig prefers the config directory when one is given; otherwise the
// probe configuration comes from the JIRA_* environment variables.
func loadConfig() (*config.Preflight, error) {
	if configDir != "" {
		preflightConfig := &config.Preflight{}
		if err := preflightConfig.GenerateFromConfigDir(configDir); err != nil {
			return nil, err
		}
		return preflightConfig, nil
	}

	return config.FromEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
