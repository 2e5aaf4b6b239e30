package report

import (
	"fmt"
	"sort"
	"strings"

	"discord-calendar-bot/internal/model"
)

// RenderWeeklyReport renders the hours-worked report. All four priority
// buckets are always emitted, zero or not; the day breakdown is in
// ascending lexicographic date order.
func RenderWeeklyReport(r model.WeeklyReport) string {
	lines := []string{"**📊 週間レポート**\n"}
	lines = append(lines, fmt.Sprintf("**総作業時間:** %.1f時間\n", r.Total))

	lines = append(lines, "**優先度別:**")
	lines = append(lines, fmt.Sprintf("★★★ (A): %.1f時間", r.ByPriority["A"]))
	lines = append(lines, fmt.Sprintf("★★ (B): %.1f時間", r.ByPriority["B"]))
	lines = append(lines, fmt.Sprintf("★ (C): %.1f時間", r.ByPriority["C"]))
	lines = append(lines, fmt.Sprintf("その他: %.1f時間", otherHours(r.ByPriority)))

	if len(r.ByDay) > 0 {
		lines = append(lines, "\n**日別作業時間:**")
		days := make([]string, 0, len(r.ByDay))
		for day := range r.ByDay {
			days = append(days, day)
		}
		sort.Strings(days)
		for _, day := range days {
			lines = append(lines, fmt.Sprintf("%s: %.1f時間", day, r.ByDay[day]))
		}
	}

	return strings.Join(lines, "\n")
}

// otherHours folds every unrecognized priority label into the "other"
// bucket, on top of whatever the backend already reported as other.
func otherHours(byPriority map[string]float64) float64 {
	total := 0.0
	for label, hours := range byPriority {
		switch label {
		case "A", "B", "C":
		default:
			total += hours
		}
	}
	return total
}
