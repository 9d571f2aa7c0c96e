// seafuzz runs soak batches of independent negative-path fuzzing trials
// against the in-memory harness collaborators. It is a development tool for
// the mutation engine itself: it surfaces mutation-kind coverage and
// baseline-fallthrough rates over randomly generated order batches, without
// performing real protocol calls.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/portside/seafuzz/fuzz"
	"github.com/portside/seafuzz/harness"
	"github.com/portside/seafuzz/model/order"
	"github.com/portside/seafuzz/module/metrics"
	"github.com/portside/seafuzz/utils/rand"
	"github.com/portside/seafuzz/utils/unittest"
)

var (
	flagTrials      int
	flagOrders      int
	flagWorkers     int
	flagMetricsPort uint
	flagDebug       bool
)

var rootCmd = &cobra.Command{
	Use:   "seafuzz",
	Short: "soak-run the order mutation engine over random batches",
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVar(&flagTrials, "trials", 1000, "number of independent trials to run")
	rootCmd.Flags().IntVar(&flagOrders, "orders", 4, "orders per generated batch")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 4, "number of trials running in parallel")
	rootCmd.Flags().UintVar(&flagMetricsPort, "metrics-port", 0, "serve prometheus metrics on this port (0 disables)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable per-trial debug logging")

	viper.SetEnvPrefix("SEAFUZZ")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic(fmt.Sprintf("could not bind flags: %s", err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(*cobra.Command, []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if viper.GetBool("debug") {
		log = log.Level(zerolog.DebugLevel)
	}

	if port := viper.GetUint("metrics-port"); port > 0 {
		server := metrics.NewServer(log, port)
		<-server.Ready()
		defer func() {
			<-server.Done()
		}()
	}

	store := harness.NewStatusStore()
	accounts := harness.NewAccountSet()
	executor := harness.NewRecordingExecutor()
	clock := harness.NewSystemClock()

	registry, err := fuzz.NewRegistry(
		fuzz.NewFilters(store, accounts),
		fuzz.NewMutations(clock, store, executor),
	)
	if err != nil {
		return fmt.Errorf("could not build mutation registry: %w", err)
	}
	driver := fuzz.NewDriver(log, registry, executor, metrics.NewMutationCollector())

	trials := viper.GetInt("trials")
	orders := viper.GetInt("orders")

	var (
		mu        sync.Mutex
		applied   = make(map[fuzz.Kind]int)
		baselines int
		failures  int
	)

	log.Info().Int("trials", trials).Int("orders", orders).Msg("starting soak run")
	start := time.Now()

	pool := workerpool.New(viper.GetInt("workers"))
	for i := 0; i < trials; i++ {
		pool.Submit(func() {
			op, err := pickOperation()
			if err != nil {
				log.Err(err).Msg("could not pick operation")
				return
			}
			ectx := unittest.ExecutionContextFixture(orders, clock.Now(), unittest.WithOperation(op))

			result, err := driver.RunTrial(ectx)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				failures++
				log.Err(err).Str("operation", op.String()).Msg("trial failed")
			case result.Mutated:
				applied[result.Kind]++
			default:
				baselines++
			}
		})
	}
	pool.StopWait()

	summary := log.Info().
		Dur("elapsed", time.Since(start)).
		Uint64("trials", driver.Trials()).
		Int("baseline_fallthroughs", baselines).
		Int("failures", failures)
	for kind, count := range applied {
		summary = summary.Int(kind.String(), count)
	}
	summary.Msg("soak run complete")

	if failures > 0 {
		return fmt.Errorf("%d of %d trials failed", failures, trials)
	}
	return nil
}

// pickOperation stands in for the external operation selector: it draws the
// operation under test uniformly from the closed set.
func pickOperation() (order.Operation, error) {
	i, err := rand.Uintn(uint(len(order.Operations)))
	if err != nil {
		return 0, fmt.Errorf("could not draw operation: %w", err)
	}
	return order.Operations[i], nil
}
