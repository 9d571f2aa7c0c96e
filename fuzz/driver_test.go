package fuzz_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portside/seafuzz/fuzz"
	"github.com/portside/seafuzz/model/order"
	"github.com/portside/seafuzz/utils/unittest"
)

// countingMetrics tallies metric callbacks for assertions.
type countingMetrics struct {
	mu        sync.Mutex
	trials    int
	applied   map[string]int
	baselines int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{applied: make(map[string]int)}
}

func (cm *countingMetrics) TrialStarted(order.Operation) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.trials++
}

func (cm *countingMetrics) MutationApplied(kind string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.applied[kind]++
}

func (cm *countingMetrics) BaselineFallthrough() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.baselines++
}

func TestDriverAppliesExactlyOneMutation(t *testing.T) {
	registry, executor := newRegistry(t, fixtureNow)
	metrics := newCountingMetrics()
	driver := fuzz.NewDriver(zerolog.Nop(), registry, executor, metrics)

	ectx := unittest.ExecutionContextFixture(4, fixtureNow)
	result, err := driver.RunTrial(ectx)
	require.NoError(t, err)

	require.True(t, result.Mutated)
	assert.GreaterOrEqual(t, result.OrderIndex, 0)
	assert.Less(t, result.OrderIndex, 4)

	assert.Equal(t, 1, executor.Executions(), "applier executes exactly once per trial")
	assert.Same(t, ectx, executor.LastContext())

	assert.Equal(t, 1, metrics.trials)
	assert.Equal(t, 0, metrics.baselines)
	assert.Equal(t, map[string]int{result.Kind.String(): 1}, metrics.applied)
	assert.Equal(t, uint64(1), driver.Trials())
}

func TestDriverBaselineFallthrough(t *testing.T) {
	registry, executor := newRegistry(t, fixtureNow)
	metrics := newCountingMetrics()
	driver := fuzz.NewDriver(zerolog.Nop(), registry, executor, metrics)

	// contract orders are ineligible for every mutation kind
	ectx := unittest.ExecutionContextFixture(3, fixtureNow)
	for i := range ectx.Orders {
		ectx.Orders[i].Type = order.Contract
	}
	unittest.RehashOrders(ectx)

	result, err := driver.RunTrial(ectx)
	require.NoError(t, err)

	assert.False(t, result.Mutated)
	assert.Equal(t, 1, executor.Executions(), "baseline still executes the batch")
	assert.Equal(t, 1, metrics.baselines)
	assert.Empty(t, metrics.applied)
}

func TestDriverRejectsMisalignedContext(t *testing.T) {
	registry, executor := newRegistry(t, fixtureNow)
	driver := fuzz.NewDriver(zerolog.Nop(), registry, executor, newCountingMetrics())

	ectx := unittest.ExecutionContextFixture(3, fixtureNow)
	ectx.OrderHashes = ectx.OrderHashes[:2]

	_, err := driver.RunTrial(ectx)
	require.Error(t, err)
	assert.Equal(t, 0, executor.Executions())
}

func TestDriverSelectsOnlyEligibleCandidates(t *testing.T) {
	registry, executor := newRegistry(t, fixtureNow)
	driver := fuzz.NewDriver(zerolog.Nop(), registry, executor, newCountingMetrics())

	// contract orders are ineligible for every kind, so order 1 is the
	// only possible selection on every trial
	for trial := 0; trial < 20; trial++ {
		ectx := unittest.ExecutionContextFixture(3, fixtureNow,
			unittest.WithOperation(order.FulfillOrder))
		ectx.Orders[0].Type = order.Contract
		ectx.Orders[2].Type = order.Contract
		unittest.RehashOrders(ectx)

		result, err := driver.RunTrial(ectx)
		require.NoError(t, err)
		require.True(t, result.Mutated)
		assert.Equal(t, 1, result.OrderIndex, "only the non-contract order may be selected")
	}
}
