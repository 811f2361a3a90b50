package emit

import (
	"testing"
)

// TestEvent_Struct verifies Event struct fields.
func TestEvent_Struct(t *testing.T) {
	t.Run("complete event with all fields", func(t *testing.T) {
		meta := map[string]interface{}{
			"frontier": 4,
			"from":     "GG_BB",
		}

		event := Event{
			RunID: "run-001",
			Step:  3,
			State: "G_GBB",
			Msg:   MsgExpanded,
			Meta:  meta,
		}

		if event.RunID != "run-001" {
			t.Errorf("expected RunID = 'run-001', got %q", event.RunID)
		}
		if event.Step != 3 {
			t.Errorf("expected Step = 3, got %d", event.Step)
		}
		if event.State != "G_GBB" {
			t.Errorf("expected State = 'G_GBB', got %q", event.State)
		}
		if event.Msg != MsgExpanded {
			t.Errorf("expected Msg = %q, got %q", MsgExpanded, event.Msg)
		}
		if event.Meta["frontier"] != 4 {
			t.Errorf("expected Meta['frontier'] = 4, got %v", event.Meta["frontier"])
		}
	})

	t.Run("minimal event", func(t *testing.T) {
		event := Event{
			RunID: "run-002",
			Msg:   MsgCheckStart,
		}

		if event.Step != 0 {
			t.Errorf("expected Step = 0 (zero value), got %d", event.Step)
		}
		if event.State != "" {
			t.Errorf("expected State = \"\" (zero value), got %q", event.State)
		}
		if event.Meta != nil {
			t.Error("expected Meta = nil (zero value)")
		}
	})

	t.Run("zero value event", func(t *testing.T) {
		var event Event

		if event.RunID != "" {
			t.Errorf("expected zero value RunID, got %q", event.RunID)
		}
		if event.Step != 0 {
			t.Errorf("expected zero value Step, got %d", event.Step)
		}
		if event.State != "" {
			t.Errorf("expected zero value State, got %q", event.State)
		}
		if event.Msg != "" {
			t.Errorf("expected zero value Msg, got %q", event.Msg)
		}
		if event.Meta != nil {
			t.Error("expected zero value Meta to be nil")
		}
	})
}

// TestEvent_UseCases verifies the event shapes the search driver emits.
func TestEvent_UseCases(t *testing.T) {
	t.Run("check start event", func(t *testing.T) {
		event := Event{
			RunID: "run-001",
			Step:  0,
			State: "111",
			Msg:   MsgCheckStart,
			Meta: map[string]interface{}{
				"order": "breadth_first",
			},
		}

		if event.Meta["order"] != "breadth_first" {
			t.Errorf("expected order = 'breadth_first', got %v", event.Meta["order"])
		}
	})

	t.Run("rejection event carries parent state", func(t *testing.T) {
		event := Event{
			RunID: "run-001",
			Step:  2,
			State: "1~~",
			Msg:   MsgRejected,
			Meta: map[string]interface{}{
				"from": "1~1",
			},
		}

		from, ok := event.Meta["from"].(string)
		if !ok || from != "1~1" {
			t.Errorf("expected from = '1~1', got %v", event.Meta["from"])
		}
	})

	t.Run("goal event carries path length", func(t *testing.T) {
		event := Event{
			RunID: "run-001",
			Step:  7,
			State: "222",
			Msg:   MsgGoal,
			Meta: map[string]interface{}{
				"path_length": 11,
				"expanded":    7,
			},
		}

		if event.Meta["path_length"] != 11 {
			t.Errorf("expected path_length = 11, got %v", event.Meta["path_length"])
		}
	})
}

// TestEvent_MessageConstants verifies the message vocabulary is distinct.
func TestEvent_MessageConstants(t *testing.T) {
	msgs := []string{
		MsgCheckStart,
		MsgExpanded,
		MsgDiscovered,
		MsgRejected,
		MsgGoal,
		MsgExhausted,
		MsgLimit,
	}

	seen := make(map[string]bool)
	for _, msg := range msgs {
		if msg == "" {
			t.Error("message constant must not be empty")
		}
		if seen[msg] {
			t.Errorf("duplicate message constant %q", msg)
		}
		seen[msg] = true
	}
}
