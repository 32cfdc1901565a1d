package status

import (
	"fmt"
)

// FormatProgress formats a progress message with percentage
func FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatSummary formats the one-line result of a batch
func FormatSummary(s Summary) string {
	if s.Total == 0 {
		return "no .js files found"
	}
	msg := fmt.Sprintf("processed %d/%d files", s.Succeeded, s.Total)
	if s.Bundled > 0 {
		msg += fmt.Sprintf(", %d unpacked", s.Bundled)
	}
	if !s.OK() {
		msg += fmt.Sprintf(", %d failed", s.Failed())
	}
	return msg
}
