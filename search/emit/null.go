package emit

// NullEmitter implements Emitter by discarding all events.
//
// This is a no-op emitter for runs where event capture is not desired. It
// implements the Emitter interface but does nothing with emitted events.
//
// Use cases:
//   - Benchmarks where observability overhead would skew timings
//   - Testing scenarios where event capture is not needed
//   - Disabling event emission without changing code
//
// Example usage:
//
//	emitter := emit.NewNullEmitter()
//	space := search.New(initial, successors, nil, search.Options{Emitter: emitter})
type NullEmitter struct{}

// NewNullEmitter creates a new NullEmitter.
//
// Returns a NullEmitter that discards all events without any processing.
// This is safe for concurrent use and has zero overhead.
func NewNullEmitter() *NullEmitter {
	return &NullEmitter{}
}

// Emit discards the event without any processing.
func (n *NullEmitter) Emit(event Event) {
	// No-op: discard the event
}
