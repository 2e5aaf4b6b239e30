package report

import (
	"fmt"
	"strings"

	"discord-calendar-bot/internal/model"
)

// maxListedTasks bounds how many completed/pending items a progress report
// shows per section before collapsing to an "…N more" suffix.
const maxListedTasks = 5

// barSegments is the fixed width of the progress bar.
const barSegments = 10

// ProgressBar renders a 10-segment bar for a completion rate in [0,100].
// Out-of-range rates are clamped so the bar always has exactly 10 glyphs.
func ProgressBar(completionRate int) string {
	if completionRate < 0 {
		completionRate = 0
	}
	if completionRate > 100 {
		completionRate = 100
	}
	filled := completionRate / barSegments
	return strings.Repeat("█", filled) + strings.Repeat("░", barSegments-filled)
}

// Encouragement returns the tiered phrase for a completion rate. Bands are
// inclusive lower bounds, evaluated descending, first match wins.
func Encouragement(completionRate int) string {
	switch {
	case completionRate >= 80:
		return "🎉 素晴らしい進捗です！"
	case completionRate >= 50:
		return "👍 順調ですね！"
	case completionRate >= 20:
		return "💪 頑張りましょう！"
	default:
		return "⏰ まだ時間はあります！"
	}
}

// RenderProgress renders today's progress snapshot: rate, bar, completion
// counts, up to 5 completed and 5 pending tasks, and an encouragement line.
func RenderProgress(s model.ProgressSnapshot) string {
	lines := []string{fmt.Sprintf("📊 **今日の進捗レポート (%s)**\n", s.Date)}

	lines = append(lines, fmt.Sprintf("**達成率:** %d%% `%s`", s.CompletionRate, ProgressBar(s.CompletionRate)))
	lines = append(lines, fmt.Sprintf("**完了:** %d/%d タスク", s.CompletedCount, s.TotalTasks))

	if s.TotalTasks == 0 {
		lines = append(lines, "\n今日予定されているタスクはありません。")
		return strings.Join(lines, "\n")
	}

	if len(s.Completed) > 0 {
		lines = append(lines, fmt.Sprintf("\n**✅ 完了タスク (%d個):**", len(s.Completed)))
		lines = append(lines, taskLines(s.Completed)...)
	}
	if len(s.Pending) > 0 {
		lines = append(lines, fmt.Sprintf("\n**⏳ 未完了タスク (%d個):**", len(s.Pending)))
		lines = append(lines, taskLines(s.Pending)...)
	}

	lines = append(lines, "\n"+Encouragement(s.CompletionRate))
	return strings.Join(lines, "\n")
}

// taskLines renders up to maxListedTasks task lines with an overflow suffix.
func taskLines(tasks []model.CalendarEvent) []string {
	lines := make([]string, 0, maxListedTasks+1)
	for i, task := range tasks {
		if i >= maxListedTasks {
			break
		}
		title := task.Title
		if title == "" {
			title = placeholderTitle
		}
		lines = append(lines, fmt.Sprintf("• %s `%s-%s`", title, task.Start, task.End))
	}
	if n := len(tasks) - maxListedTasks; n > 0 {
		lines = append(lines, fmt.Sprintf("... 他%d個", n))
	}
	return lines
}
