package shared

import (
	"net/http"
	"strings"
)

// TenantID extracts the required tenantId query parameter. Every
// tenant-scoped endpoint rejects the request with 400 when it is missing.
func TenantID(r *http.Request) (string, bool) {
	tenantID := strings.TrimSpace(r.URL.Query().Get("tenantId"))
	return tenantID, tenantID != ""
}
