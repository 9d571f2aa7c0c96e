package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/portside/seafuzz/model/order"
)

const namespaceFuzz = "seafuzz"

// MutationCollector reports fuzzing-trial outcomes to prometheus.
type MutationCollector struct {
	trialsStarted        *prometheus.CounterVec
	mutationsApplied     *prometheus.CounterVec
	baselineFallthroughs prometheus.Counter
}

// NewMutationCollector registers and returns a collector for trial metrics.
func NewMutationCollector() *MutationCollector {

	mc := &MutationCollector{

		trialsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceFuzz,
			Name:      "trials_started_total",
			Help:      "count of fuzzing trials started, by operation under test",
		}, []string{"operation"}),

		mutationsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceFuzz,
			Name:      "mutations_applied_total",
			Help:      "count of adversarial mutations applied, by mutation kind",
		}, []string{"kind"}),

		baselineFallthroughs: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceFuzz,
			Name:      "baseline_fallthroughs_total",
			Help:      "count of trials with no eligible mutation candidate, executed un-mutated",
		}),
	}

	return mc
}

// TrialStarted counts one started trial for the operation.
func (mc *MutationCollector) TrialStarted(op order.Operation) {
	mc.trialsStarted.WithLabelValues(op.String()).Inc()
}

// MutationApplied counts one applied mutation of the given kind.
func (mc *MutationCollector) MutationApplied(kind string) {
	mc.mutationsApplied.WithLabelValues(kind).Inc()
}

// BaselineFallthrough counts one trial that executed without mutation.
func (mc *MutationCollector) BaselineFallthrough() {
	mc.baselineFallthroughs.Inc()
}
