package upstream

import (
	"bytes"
	"encoding/json"
)

// decodeList normalizes the two list shapes the university API produces.
// A bare JSON array is decoded as-is. Any JSON object is treated as a
// paginated wrapper and the "results" member is decoded; a wrapper without
// results yields an empty slice. dest must be a pointer to a slice.
func decodeList(body []byte, dest any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return emptyList(dest)
	}

	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, dest)
	}

	var wrapper struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return err
	}
	if len(wrapper.Results) == 0 || string(wrapper.Results) == "null" {
		return emptyList(dest)
	}
	return json.Unmarshal(wrapper.Results, dest)
}

// emptyList fills dest with a non-nil empty slice so callers and JSON
// encoders never see null.
func emptyList(dest any) error {
	return json.Unmarshal([]byte("[]"), dest)
}
