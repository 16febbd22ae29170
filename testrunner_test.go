package swipedeck

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 300, "toY": 10, "frames": 4},
		{"action": "wait", "frames": 3},
		{"action": "click", "x": 5, "y": 5}
	]}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if len(r.steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(r.steps))
	}
	if r.steps[0].ToX != 300 || r.steps[0].Frames != 4 {
		t.Errorf("drag step = %+v", r.steps[0])
	}
	if r.Done() {
		t.Error("new runner should not be done")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `{"steps": [`, "parse test script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"missing steps", `{}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "fling"}]}`, `unknown action "fling"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestTestRunnerSequencing(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 30, "toY": 0, "frames": 3},
		{"action": "wait", "frames": 2},
		{"action": "click", "x": 1, "y": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.SetTestRunner(r)

	// Frame 1 queues the drag and consumes its press.
	s.update(1.0 / 60)
	if s.PendingInput() != 2 {
		t.Fatalf("PendingInput = %d after first frame, want 2", s.PendingInput())
	}
	// The runner waits for the drag to drain before the next step.
	s.update(1.0 / 60)
	s.update(1.0 / 60)
	if s.PendingInput() != 0 || r.cursor != 1 {
		t.Fatalf("PendingInput = %d, cursor = %d", s.PendingInput(), r.cursor)
	}

	// wait 2: this frame plus one more.
	s.update(1.0 / 60)
	s.update(1.0 / 60)
	if r.cursor != 2 {
		t.Fatalf("cursor = %d during wait, want 2", r.cursor)
	}

	// click, then both of its events drain.
	s.update(1.0 / 60)
	if r.cursor != 3 || r.Done() {
		t.Fatalf("cursor = %d, done = %v after click", r.cursor, r.Done())
	}
	s.update(1.0 / 60)
	s.update(1.0 / 60)
	if !r.Done() {
		t.Error("runner should be done once the click is consumed")
	}
}
