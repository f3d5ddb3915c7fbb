package probe

import (
	"context"
	"encoding/json"
)

type Probe interface {
	Exec(ctx context.Context) *Result
}

// Result is the outcome of a single probe execution. OK is true exactly when
// the backend answered with status 200 and a parseable document; StatusCode
// is zero for transport-level failures.
type Result struct {
	Name        string          `json:"-"`
	OK          bool            `json:"ok"`
	DisplayName string          `json:"displayName,omitempty"`
	StatusCode  int             `json:"statusCode,omitempty"`
	Message     string          `json:"message,omitempty"`
	Raw         json.RawMessage `json:"-"`
}

type StatusResponse struct {
	Probes map[string]*Result `json:"probes"`
}
