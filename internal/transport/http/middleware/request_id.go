package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"assesshub/internal/requestctx"
)

const requestIDHeader = "X-Request-ID"

// Incoming ids longer than this are treated as garbage and replaced; they
// would otherwise flow verbatim into every log line.
const maxRequestIDLen = 64

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)
		ctx := requestctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}
