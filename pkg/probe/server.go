package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jiratools/preflight/internal/config"
	log "github.com/sirupsen/logrus"
)

// statusTimeout bounds a single /status request; it is the default probe
// timeout plus some grace so a hung backend cannot wedge the endpoint.
const statusTimeout = 45 * time.Second

type Handler struct {
	cfg    *config.Preflight
	probes map[string]Probe
}

func NewProbeHandler(cfg *config.Preflight) (*Handler, error) {
	probes, err := buildProbesFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Handler{cfg: cfg, probes: probes}, nil
}

// ExecAll runs every configured probe once, in probe name order.
func (h *Handler) ExecAll(ctx context.Context) []*Result {
	names := make([]string, 0, len(h.probes))
	for name := range h.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]*Result, 0, len(names))
	for _, name := range names {
		result := h.probes[name].Exec(ctx)
		result.Name = name
		results = append(results, result)
	}

	return results
}

func (h *Handler) HandleStatus(res http.ResponseWriter, req *http.Request) {
	response := StatusResponse{
		Probes: make(map[string]*Result),
	}

	results := make(chan *Result, len(h.probes))
	timeout := time.NewTimer(statusTimeout)
	defer timeout.Stop()

	for i := range h.probes {
		response.Probes[i] = &Result{Name: i, OK: false, Message: "timed out"}

		go func(p Probe, name string) {
			result := p.Exec(req.Context())
			result.Name = name
			results <- result
		}(h.probes[i], i)
	}

	success := true

	for i := 0; i < len(h.probes); i++ {
		select {
		case result := <-results:
			response.Probes[result.Name] = result
			success = success && result.OK
		case <-timeout.C:
			success = false
			log.WithFields(log.Fields{"kind": "probe"}).Error("timed out")
		}
	}

	res.Header().Set("Content-Type", "application/json")

	if !success {
		res.WriteHeader(http.StatusServiceUnavailable)
	}

	_ = json.NewEncoder(res).Encode(&response)
}

func RunProbeServer(ph *Handler, signals chan os.Signal, listenPort int) error {
	m := mux.NewRouter()
	m.Path("/status").HandlerFunc(ph.HandleStatus)

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", listenPort),
		Handler: m,
	}

	go func() {
		for s := range signals {
			if s == syscall.SIGINT || s == syscall.SIGTERM {
				log.WithField("receivedSignal", s.String()).Info("shutting down probe server")
				_ = server.Shutdown(context.Background())
			}
		}
	}()

	err := server.ListenAndServe()
	if err != http.ErrServerClosed {
		return err
	}

	return nil
}

func buildProbesFromConfig(cfg *config.Preflight) (map[string]Probe, error) {
	result := make(map[string]Probe)

	for i := range cfg.Probes {
		if cfg.Probes[i].Jira != nil {
			p, err := NewJiraProbe(cfg.Probes[i].Jira)
			if err != nil {
				return nil, fmt.Errorf("failed to build probe %q: %w", cfg.Probes[i].Name, err)
			}
			result[cfg.Probes[i].Name] = p
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no probes configured")
	}

	return result, nil
}
