package notify

import (
	"strings"
	"testing"
)

func TestReportSummaryBody(t *testing.T) {
	msg := ReportSummary("alice", "alice@example.com", []SummaryLine{
		{Coach: "B1 (Sleeper) - 12345 - Express", DefectType: "Light", HasPhoto: true, Status: "Pending"},
		{Coach: "B1 (Sleeper) - 12345 - Express", DefectType: "Other", CustomText: "cracked floor", HasPhoto: false, Status: "Pending"},
	})

	if len(msg.To) != 1 || msg.To[0] != "alice@example.com" {
		t.Fatalf("recipient = %v", msg.To)
	}
	for _, want := range []string{
		"Dear alice",
		"Defect: Light",
		"Photo: Yes",
		"Defect: Other - cracked floor",
		"Photo: No",
		"Status: Pending",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("summary body missing %q:\n%s", want, msg.Body)
		}
	}
}

func TestStatusUpdateBody(t *testing.T) {
	msg := StatusUpdate("bob", "bob@example.com", 42, "Express (12345)", "B1", "Fan", "Pending", "Resolved")

	for _, want := range []string{
		"Defect ID: 42",
		"Train: Express (12345)",
		"Coach: B1",
		"Previous Status: Pending",
		"Updated Status: Resolved",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("status mail missing %q:\n%s", want, msg.Body)
		}
	}
}
