package module

// Clock provides the current time in unix seconds. The time-window
// mutations position an order's validity window relative to it, so tests
// substitute a fixed clock to make the resulting windows deterministic.
type Clock interface {
	Now() uint64
}
