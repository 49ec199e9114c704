package scoring

import (
	"encoding/json"
	"fmt"
)

// Export serializes a Result to indented JSON with the stable field
// names from the Result struct tags.
func Export(r *Result) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}
	return data, nil
}

// Parse deserializes an exported Result. Exporting and re-parsing
// reproduces the breakdowns exactly.
func Parse(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}
	return &r, nil
}
