package shared

import "time"

// Date parameters arrive either as full RFC3339 timestamps or bare dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
