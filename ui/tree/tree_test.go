package tree

import (
	"testing"
)

func TestBuildTreePrefix(t *testing.T) {
	// Collection level (depth 0)
	prefix := BuildTreePrefix(0, []bool{})
	if prefix != "" {
		t.Errorf("Top-level entry should have empty prefix, got '%s'", prefix)
	}

	// Course level (depth 1)
	prefix = BuildTreePrefix(1, []bool{false})
	if prefix != "  ├─" {
		t.Errorf("First course should have '  ├─', got '%s'", prefix)
	}

	prefix = BuildTreePrefix(1, []bool{true})
	if prefix != "  └─" {
		t.Errorf("Last course should have '  └─', got '%s'", prefix)
	}

	// Lesson level (depth 2) under a course with siblings below
	prefix = BuildTreePrefix(2, []bool{false, false})
	if prefix != "  │ ├─" {
		t.Errorf("Lesson with continuing line should have '  │ ├─', got '%s'", prefix)
	}

	prefix = BuildTreePrefix(2, []bool{true, false})
	if prefix != "    ├─" {
		t.Errorf("Lesson without continuing line should have '    ├─', got '%s'", prefix)
	}

	prefix = BuildTreePrefix(2, []bool{false, true})
	if prefix != "  │ └─" {
		t.Errorf("Last lesson with continuing line should have '  │ └─', got '%s'", prefix)
	}

	prefix = BuildTreePrefix(2, []bool{true, true})
	if prefix != "    └─" {
		t.Errorf("Last lesson without continuing line should have '    └─', got '%s'", prefix)
	}
}
