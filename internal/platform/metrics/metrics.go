package metrics

import (
	"net/http"
	"sync"
	"time"
)

// Collector accumulates request counters served by the /metrics endpoint.
// One instance per process, written on every request, so it stays a plain
// mutex-guarded struct rather than a metrics framework.
type Collector struct {
	mu           sync.Mutex
	startedAt    time.Time
	requests     uint64
	clientErrors uint64
	serverErrors uint64
	throttled    uint64
	totalLatency time.Duration
	maxLatency   time.Duration
}

func New() *Collector {
	return &Collector{startedAt: time.Now()}
}

func (c *Collector) Record(status int, latency time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests++
	switch {
	case status == http.StatusTooManyRequests:
		c.throttled++
	case status >= 500:
		c.serverErrors++
	case status >= 400:
		c.clientErrors++
	}
	c.totalLatency += latency
	if latency > c.maxLatency {
		c.maxLatency = latency
	}
}

func (c *Collector) Snapshot() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	avgMs := float64(0)
	if c.requests > 0 {
		avgMs = float64(c.totalLatency.Milliseconds()) / float64(c.requests)
	}
	return map[string]any{
		"uptimeSec":    int64(time.Since(c.startedAt).Seconds()),
		"requests":     c.requests,
		"clientErrors": c.clientErrors,
		"serverErrors": c.serverErrors,
		"throttled":    c.throttled,
		"avgLatencyMs": avgMs,
		"maxLatencyMs": c.maxLatency.Milliseconds(),
	}
}
