package cmd

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/pretty"
)

// renderJSON indents and colorizes a raw JSON document for terminal output.
// The document is printed as-is when it cannot be re-indented.
func renderJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "    "); err != nil {
		return string(raw)
	}

	return string(pretty.Color(buf.Bytes(), nil))
}
