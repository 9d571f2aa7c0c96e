package fuzz

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/portside/seafuzz/module"
	"github.com/portside/seafuzz/utils/rand"
)

// Driver runs complete fuzzing trials. It owns the execution context for
// the duration of a trial: it lends it read-only to the filters of every
// mutation kind to build the candidate sets, selects one eligible kind and
// one candidate order uniformly at random, lends the context exclusively to
// that kind's applier, and the applier hands it to the executor. When no
// order is eligible for any kind, the trial falls through to an un-mutated
// baseline execution.
//
// The driver itself holds no per-trial state, so independent trials may run
// through it concurrently, each with its own context.
type Driver struct {
	log      zerolog.Logger
	registry *Registry
	executor Executor
	metrics  module.MutationMetrics
	trials   atomic.Uint64
}

// NewDriver returns a trial driver over the given registry. The executor
// is used directly only for baseline fallthrough runs; mutated runs reach
// it through the appliers.
func NewDriver(log zerolog.Logger, registry *Registry, executor Executor, metrics module.MutationMetrics) *Driver {
	return &Driver{
		log:      log.With().Str("component", "mutation_driver").Logger(),
		registry: registry,
		executor: executor,
		metrics:  metrics,
	}
}

// TrialResult describes what a trial did: which mutation kind fired against
// which order index, or that the batch was executed un-mutated.
type TrialResult struct {
	Mutated    bool
	Kind       Kind
	OrderIndex int
}

// Trials returns the number of trials started so far.
func (d *Driver) Trials() uint64 {
	return d.trials.Load()
}

// RunTrial executes one complete trial over the given context. The context
// must not be reused across trials: a mutation is irreversible within it.
func (d *Driver) RunTrial(ectx *ExecutionContext) (*TrialResult, error) {
	if err := ectx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid execution context: %w", err)
	}

	trial := d.trials.Inc()
	d.metrics.TrialStarted(ectx.Operation)

	log := d.log.With().
		Uint64("trial", trial).
		Str("operation", ectx.Operation.String()).
		Int("orders", len(ectx.Orders)).
		Logger()

	// one candidate set per kind that has at least one eligible order
	type candidateSet struct {
		kind    Kind
		indices []int
	}
	var sets []candidateSet
	for _, kind := range d.registry.Kinds() {
		if indices := d.registry.Candidates(kind, ectx); len(indices) > 0 {
			sets = append(sets, candidateSet{kind: kind, indices: indices})
		}
	}

	if len(sets) == 0 {
		log.Debug().Msg("no eligible mutation candidate, executing baseline")
		d.metrics.BaselineFallthrough()
		if err := d.executor.Execute(ectx); err != nil {
			return nil, fmt.Errorf("baseline execution failed: %w", err)
		}
		return &TrialResult{Mutated: false}, nil
	}

	chosen, err := pick(sets)
	if err != nil {
		return nil, fmt.Errorf("could not select mutation kind: %w", err)
	}
	orderIndex, err := pick(chosen.indices)
	if err != nil {
		return nil, fmt.Errorf("could not select candidate order: %w", err)
	}

	state := &MutationState{}
	if err := state.Select(orderIndex); err != nil {
		return nil, fmt.Errorf("could not record selection: %w", err)
	}

	mutation, ok := d.registry.Lookup(chosen.kind)
	if !ok {
		return nil, fmt.Errorf("mutation kind %s disappeared from registry", chosen.kind)
	}

	log.Debug().
		Str("mutation", chosen.kind.String()).
		Int("order_index", orderIndex).
		Int("candidates", len(chosen.indices)).
		Msg("applying mutation")

	if err := mutation.Apply(ectx, state); err != nil {
		return nil, fmt.Errorf("could not apply mutation %s to order %d: %w",
			chosen.kind, orderIndex, err)
	}
	d.metrics.MutationApplied(chosen.kind.String())

	return &TrialResult{
		Mutated:    true,
		Kind:       chosen.kind,
		OrderIndex: orderIndex,
	}, nil
}

// pick returns a uniformly random element of the non-empty slice.
func pick[T any](items []T) (T, error) {
	var zero T
	i, err := rand.Uintn(uint(len(items)))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}
