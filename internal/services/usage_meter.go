package services

import (
	"sync"
	"time"
)

// UsageMeter counts engine operations per name. It is safe for concurrent use.
type UsageMeter struct {
	mu      sync.Mutex
	counts  map[string]int64
	since   time.Time
	nowFunc func() time.Time
}

type UsageSnapshot struct {
	Since  time.Time        `json:"since"`
	Counts map[string]int64 `json:"counts"`
}

func NewUsageMeter(nowFunc func() time.Time) *UsageMeter {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &UsageMeter{
		counts:  make(map[string]int64),
		since:   nowFunc().UTC(),
		nowFunc: nowFunc,
	}
}

func (meter *UsageMeter) Record(operation string) {
	meter.mu.Lock()
	defer meter.mu.Unlock()
	meter.counts[operation]++
}

func (meter *UsageMeter) Snapshot() UsageSnapshot {
	meter.mu.Lock()
	defer meter.mu.Unlock()

	counts := make(map[string]int64, len(meter.counts))
	for operation, count := range meter.counts {
		counts[operation] = count
	}
	return UsageSnapshot{Since: meter.since, Counts: counts}
}

func (meter *UsageMeter) Reset() {
	meter.mu.Lock()
	defer meter.mu.Unlock()
	meter.counts = make(map[string]int64)
	meter.since = meter.nowFunc().UTC()
}
