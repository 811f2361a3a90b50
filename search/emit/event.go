package emit

// Event represents a diagnostic event emitted during a reachability check.
//
// Events narrate the search as it runs:
//   - Check start and termination (goal reached, space exhausted)
//   - State expansions and discoveries
//   - Invariant rejections
//
// Events are emitted to an Emitter which can:
//   - Log to stdout/stderr
//   - Send to OpenTelemetry
//   - Buffer in memory for later inspection
type Event struct {
	// RunID identifies the check that emitted this event.
	RunID string

	// Step is the expansion ordinal within the check (1-indexed).
	// Zero for check-level events (start, exhausted).
	Step int

	// State is the rendered state this event concerns.
	// Empty for check-level events without a single subject.
	State string

	// Msg names the event; the engine uses the Msg constants below.
	Msg string

	// Meta contains additional structured data specific to this event.
	// Common keys:
	//   - "order": Search order name (check_start)
	//   - "from": Rendered predecessor state (state_discovered, state_rejected)
	//   - "frontier": Frontier depth after the expansion
	//   - "path_length": Solution length (goal_reached)
	//   - "expanded": Total expansions (goal_reached, search_exhausted)
	Meta map[string]interface{}
}

// Msg values produced by the engine. Filters and emitter implementations
// match on these.
const (
	MsgCheckStart = "check_start"
	MsgExpanded   = "state_expanded"
	MsgDiscovered = "state_discovered"
	MsgRejected   = "state_rejected"
	MsgGoal       = "goal_reached"
	MsgExhausted  = "search_exhausted"
	MsgLimit      = "limit_reached"
)
