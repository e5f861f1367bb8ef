package observability

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Metrics provides basic in-memory counters, optionally mirrored into Redis
// so counts survive restarts. Redis writes are best effort; a missing or
// unreachable client never fails the request path.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	actionCount  map[string]int64
	redis        *redis.Client
}

// NewMetrics initializes metrics storage. client may be nil.
func NewMetrics(client *redis.Client) *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		actionCount:  make(map[string]int64),
		redis:        client,
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	m.requestCount[key]++
	m.mu.Unlock()
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	m.errorCount[key]++
	m.mu.Unlock()
}

// RecordAction counts one dispatched submission per action kind.
func (m *Metrics) RecordAction(action string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.actionCount[action]++
	m.mu.Unlock()

	if m.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		_ = m.redis.Incr(ctx, "portfolio:submissions:"+action).Err()
	}
}

// ActionCount returns the in-memory count for one action.
func (m *Metrics) ActionCount(action string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.actionCount[action]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
