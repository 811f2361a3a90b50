package emit

// Emitter receives and processes diagnostic events from reachability checks.
//
// Emitters enable pluggable observability backends:
//   - Logging: stdout, files, syslog
//   - Distributed tracing: OpenTelemetry, Jaeger, Zipkin
//   - In-memory capture: testing and post-run analysis
//
// Implementations should be:
//   - Non-blocking: Avoid slowing down the search loop
//   - Thread-safe: Concurrent checks may share one emitter
//   - Resilient: Handle failures gracefully (don't crash the check)
//
// Common patterns:
//   - Buffering: Collect events and flush in batches
//   - Filtering: Only emit events matching criteria (e.g., rejections only)
//   - Multi-emit: Fan out to multiple backends
type Emitter interface {
	// Emit sends a diagnostic event to the configured backend.
	//
	// Implementations should not block the search loop. If the backend is
	// unavailable or slow, events should be:
	//   - Buffered for later delivery
	//   - Dropped with error logging
	//   - Sent asynchronously
	//
	// Emit should not panic. Errors should be handled internally.
	Emit(event Event)
}
