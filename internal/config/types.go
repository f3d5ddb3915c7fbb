package config

// Jira holds everything needed to authenticate against a Jira instance.
// String values may use the "ENV:NAME" indirection, which is resolved when
// the probe is constructed.
type Jira struct {
	BaseURL        string `hcl:"baseUrl"`
	Username       string `hcl:"username"`
	APIToken       string `hcl:"apiToken"`
	DefaultProject string `hcl:"defaultProject"`
	Timeout        string `hcl:"timeout"`
}

type Probe struct {
	Name string `hcl:",key"`
	Jira *Jira
}

type Preflight struct {
	Probes []Probe `hcl:"probe"`
}
