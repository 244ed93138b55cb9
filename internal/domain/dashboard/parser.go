package dashboard

import (
	"encoding/json"
	"strings"
)

// ParseAnalyticsData decodes a stored analytics blob. A missing, blank or
// malformed blob yields an empty structure: a half-written record must not
// break the dashboard, so this never returns an error.
func ParseAnalyticsData(raw string) AnalyticsData {
	empty := AnalyticsData{Pillars: map[string]PillarNode{}}

	if strings.TrimSpace(raw) == "" {
		return empty
	}

	var data AnalyticsData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return empty
	}
	if data.Pillars == nil {
		data.Pillars = map[string]PillarNode{}
	}
	return data
}
