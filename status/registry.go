// Package status holds run counters published by the loop and read from other goroutines
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the loop
const (
	KeyTicks       = "loop.ticks"
	KeyTickDelayMs = "loop.tick_delay_ms"
	KeyScore       = "game.score"
	KeyLevel       = "game.level"
	KeyPhase       = "game.phase"
	KeyFoodEaten   = "game.food_eaten"
	KeyHazardsHit  = "game.hazards_eaten"
	KeyFallbacks   = "spawn.fallbacks"
)

// Registry is the metrics facade.
// Writers cache pointers once and then store to the atomics directly.
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Summary renders every metric as sorted key=value pairs
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return strings.Join(parts, " ")
}
