package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jiratools/preflight/pkg/probe"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var printJSON bool
var printResponse bool

func init() {
	rootCmd.AddCommand(check)
	check.PersistentFlags().BoolVarP(&printJSON, "json", "j", false, "print the probe result as JSON")
	check.PersistentFlags().BoolVar(&printResponse, "print-response", false, "print the document returned by Jira on success")
}

var check = &cobra.Command{
	Use:   "check",
	Short: "Run the connectivity probe once",
	Long:  "This sub-command issues a single authenticated request against the configured Jira instance and reports whether the credentials were accepted",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("failed to load probe configuration: %s", err)
		}

		probeHandler, err := probe.NewProbeHandler(cfg)
		if err != nil {
			log.Fatalf("failed to build probes: %s", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		go func() {
			s := <-signals
			log.Infof("received event %s", s.String())
			cancel()
		}()

		failed := false
		for _, result := range probeHandler.ExecAll(ctx) {
			if !result.OK {
				failed = true
			}

			if printJSON {
				out, err := json.Marshal(result)
				if err != nil {
					log.Fatalf("failed to encode probe result: %s", err)
				}
				fmt.Println(string(out))
				continue
			}

			if result.OK {
				fmt.Println(renderSuccess(result))
				if printResponse && len(result.Raw) > 0 {
					fmt.Println(renderJSON(result.Raw))
				}
			} else {
				fmt.Println(renderFailure(result))
			}
		}

		if failed {
			os.Exit(1)
		}
	},
}
