// Package stats keeps in-memory service counters. Nothing here is
// persisted; a restart starts the counts over.
package stats

import (
	"sync"
	"time"
)

// Tracker accumulates request counters for the statistics endpoint.
type Tracker struct {
	mu              sync.RWMutex
	totalAnalyses   int
	errorCount      int
	totalDurationMs float64
	startedAt       time.Time
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{startedAt: time.Now()}
}

// TrackAnalysis records one completed analysis request.
func (t *Tracker) TrackAnalysis(duration time.Duration, hasError bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalAnalyses++
	if hasError {
		t.errorCount++
	}
	t.totalDurationMs += float64(duration.Milliseconds())
}

// Snapshot returns the current counters as a flat map for JSON rendering.
func (t *Tracker) Snapshot() map[string]interface{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	avg := 0.0
	errorRate := 0.0
	if t.totalAnalyses > 0 {
		avg = t.totalDurationMs / float64(t.totalAnalyses)
		errorRate = float64(t.errorCount) / float64(t.totalAnalyses) * 100
	}

	return map[string]interface{}{
		"totalAnalyses":     t.totalAnalyses,
		"errorCount":        t.errorCount,
		"errorRate":         errorRate,
		"averageDurationMs": avg,
		"uptimeSeconds":     int(time.Since(t.startedAt).Seconds()),
	}
}
