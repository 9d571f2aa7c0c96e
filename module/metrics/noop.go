package metrics

import "github.com/portside/seafuzz/model/order"

// NoopCollector discards all trial metrics. It is the default for library
// use and for tests that do not assert on metrics.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) TrialStarted(op order.Operation) {}
func (nc *NoopCollector) MutationApplied(kind string)     {}
func (nc *NoopCollector) BaselineFallthrough()            {}
