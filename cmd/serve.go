package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jiratools/preflight/pkg/probe"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var probeListenPort int

func init() {
	rootCmd.AddCommand(serve)
	serve.PersistentFlags().IntVarP(&probeListenPort, "probe-listen-port", "p", 9102, "set the port to listen for probe requests")
}

var serve = &cobra.Command{
	Use:   "serve",
	Short: "Expose the connectivity probe as an HTTP status endpoint",
	Long:  "This sub-command starts an HTTP server whose /status endpoint runs the configured probes on every request; orchestrators can use it as a readiness check for services that depend on Jira",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("failed to load probe configuration: %s", err)
		}

		probeHandler, err := probe.NewProbeHandler(cfg)
		if err != nil {
			log.Fatalf("failed to build probes: %s", err)
		}

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		log.Infof("probe server listens on port %d", probeListenPort)
		if err := probe.RunProbeServer(probeHandler, signals, probeListenPort); err != nil {
			log.Fatalf("probe server stopped with error: %s", err)
		} else {
			log.Info("probe server stopped without error")
		}
	},
}
