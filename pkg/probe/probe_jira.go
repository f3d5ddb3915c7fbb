package probe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jiratools/preflight/internal/config"
	"github.com/jiratools/preflight/internal/helper"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// myselfEndpoint is a cheap authenticated no-op; a 200 proves both
// reachability and valid credentials.
const myselfEndpoint = "/rest/api/3/myself"

type jiraProbe struct {
	baseURL    string
	authHeader string
	client     *http.Client
}

type myselfResponse struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	AccountID    string `json:"accountId"`
}

func NewJiraProbe(cfg *config.Jira) (*jiraProbe, error) {
	cfg.BaseURL = helper.ResolveEnv(cfg.BaseURL)
	cfg.Username = helper.ResolveEnv(cfg.Username)
	cfg.APIToken = helper.ResolveEnv(cfg.APIToken)
	cfg.Timeout = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Timeout), "30s", "timeout", "jira")

	if cfg.BaseURL == "" || cfg.Username == "" || cfg.APIToken == "" {
		return nil, errors.New("jira probe requires baseUrl, username and apiToken")
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration: %w", err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.APIToken))

	connCfg := &jiraProbe{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authHeader: "Basic " + auth,
		client:     &http.Client{Timeout: timeout},
	}

	return connCfg, nil
}

func (j *jiraProbe) Exec(ctx context.Context) *Result {
	urlStr := j.baseURL + myselfEndpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return &Result{OK: false, Message: err.Error()}
	}
	req.Header.Set("Authorization", j.authHeader)
	req.Header.Set("Accept", "application/json")

	res, err := j.client.Do(req)
	if err != nil {
		return &Result{OK: false, Message: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &Result{
			OK:         false,
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("jira instance %q returned status %q", urlStr, res.Status),
		}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &Result{
			OK:         false,
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("failed to read response from %q: %s", urlStr, err),
		}
	}

	myself := myselfResponse{}
	if err := json.Unmarshal(body, &myself); err != nil {
		return &Result{
			OK:         false,
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("failed to parse response from %q: %s", urlStr, err),
		}
	}

	if myself.DisplayName == "" {
		myself.DisplayName = "Unknown"
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "jira", "status": "alive", "host": urlStr, "user": myself.DisplayName}).Debug()

	return &Result{
		OK:          true,
		StatusCode:  res.StatusCode,
		DisplayName: myself.DisplayName,
		Raw:         body,
	}
}
