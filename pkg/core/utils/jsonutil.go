// Package utils holds small shared helpers: tolerant JSON decoding for
// hand-kept cache files and markdown rendering for run reports.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// TolerantUnmarshal decodes JSON that may have been trimmed or annotated by
// hand (cached analysis exports often are). It tries strict JSON first, then
// mechanical repair, then HJSON for files with comments or unquoted keys.
func TolerantUnmarshal(data []byte, v interface{}) error {
	strictErr := json.Unmarshal(data, v)
	if strictErr == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(string(data)); err == nil {
		if err := json.Unmarshal([]byte(repaired), v); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal(data, v); err == nil {
		return nil
	}

	return fmt.Errorf("tolerant decode failed: %w", strictErr)
}
