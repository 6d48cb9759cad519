package tracker

type tracker = Tracker

// A couple stateless built-in trackers.
var (
	// Track(...) always returns the current pose. Holds the shot still
	// regardless of what the framing wants.
	Frozen tracker = frozenTracker{}

	// Track(...) always returns the target. Hard cuts, no smoothing.
	Instant tracker = instantTracker{}
)

type frozenTracker struct{}

func (frozenTracker) Track(current, target Sample) Sample {
	return current
}

type instantTracker struct{}

func (instantTracker) Track(current, target Sample) Sample {
	return target
}
