package harness

import (
	"sync"

	"github.com/portside/seafuzz/fuzz"
)

// RecordingExecutor records every context it is asked to execute. It stands
// in for the real execution harness in tests and soak runs, where the point
// is to observe which mutation fired, not to perform the protocol call.
type RecordingExecutor struct {
	mu       sync.Mutex
	executed []*fuzz.ExecutionContext
}

func NewRecordingExecutor() *RecordingExecutor {
	return &RecordingExecutor{}
}

// Execute records the context and returns nil.
func (re *RecordingExecutor) Execute(ectx *fuzz.ExecutionContext) error {
	re.mu.Lock()
	defer re.mu.Unlock()
	re.executed = append(re.executed, ectx)
	return nil
}

// Executions returns the number of recorded executions.
func (re *RecordingExecutor) Executions() int {
	re.mu.Lock()
	defer re.mu.Unlock()
	return len(re.executed)
}

// LastContext returns the most recently executed context, or nil if none.
func (re *RecordingExecutor) LastContext() *fuzz.ExecutionContext {
	re.mu.Lock()
	defer re.mu.Unlock()
	if len(re.executed) == 0 {
		return nil
	}
	return re.executed[len(re.executed)-1]
}
