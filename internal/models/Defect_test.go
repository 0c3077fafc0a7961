package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusResolved, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "pending", "Done", "Whatever"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestStatusTransitionTable(t *testing.T) {
	// Every enumerated transition is currently permitted
	statuses := []string{StatusPending, StatusInProgress, StatusResolved, StatusRejected}
	for _, from := range statuses {
		for _, to := range statuses {
			if !CanTransition(from, to) {
				t.Errorf("CanTransition(%q, %q) = false", from, to)
			}
		}
	}
	if CanTransition(StatusPending, "Whatever") {
		t.Error("transition to an unknown status must be rejected")
	}
}
