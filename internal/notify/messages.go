package notify

import (
	"fmt"
	"strings"
)

// SummaryLine is one created defect in a report confirmation.
type SummaryLine struct {
	Coach      string
	DefectType string
	CustomText string
	HasPhoto   bool
	Status     string
}

// Welcome renders the registration confirmation mail.
func Welcome(username, email string) Message {
	body := fmt.Sprintf(`Dear %s,

Thank you for registering on SmartCoach Railway Defect Reporting.

Username: %s

You can now login and start reporting issues.

Regards,
SmartCoach Team`, username, username)

	return Message{
		Subject: "Welcome to SmartCoach!",
		Body:    body,
		To:      []string{email},
	}
}

// ReportSummary renders the aggregate confirmation for a defect
// report, one block per created defect.
func ReportSummary(username, email string, lines []SummaryLine) Message {
	var b strings.Builder
	for _, l := range lines {
		defect := l.DefectType
		if l.DefectType == "Other" && l.CustomText != "" {
			defect = "Other - " + l.CustomText
		}
		photo := "No"
		if l.HasPhoto {
			photo = "Yes"
		}
		fmt.Fprintf(&b, `
Coach: %s
Defect: %s
Photo: %s
Status: %s
--------------------------`, l.Coach, defect, photo, l.Status)
	}

	body := fmt.Sprintf(`Dear %s,

Thank you for reporting the issue(s) through SmartCoach.

Report Summary:%s

We'll notify you of any updates.

Regards,
SmartCoach Team`, username, b.String())

	return Message{
		Subject: "SmartCoach | Defect Report Summary",
		Body:    body,
		To:      []string{email},
	}
}

// StatusUpdate renders the mail a reporter receives when staff change
// the status of one of their defects.
func StatusUpdate(username, email string, defectID uint, train, coach, defectType, previous, updated string) Message {
	body := fmt.Sprintf(`Dear %s,

Your defect report has been updated.

Defect ID: %d
Train: %s
Coach: %s
Defect Type: %s

Previous Status: %s
Updated Status: %s

Regards,
SmartCoach Team`, username, defectID, train, coach, defectType, previous, updated)

	return Message{
		Subject: "SmartCoach | Defect Status Updated",
		Body:    body,
		To:      []string{email},
	}
}
