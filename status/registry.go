// Package status keeps named runtime counters and gauges
// The frame goroutine writes through cached pointers; loggers read them from anywhere
package status

import (
	"sync/atomic"

	"github.com/lixenwraith/flatsouls/log"
)

// Registry groups counters and gauges
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Fields renders every metric as a log field, counters first, each group sorted by name
func (r *Registry) Fields() []log.Field {
	fields := make([]log.Field, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, log.Int64(key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		fields = append(fields, log.Float64(key, v.Get()))
	})
	return fields
}
