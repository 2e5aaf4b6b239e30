package report

import (
	"fmt"
	"strings"

	"discord-calendar-bot/internal/model"
)

// LinkFunc produces a calendar deep link for an event. The renderers stay
// pure; the caller binds the link generator (and its context) into this.
type LinkFunc func(title, start, end string) string

// placeholderTitle replaces an absent event title.
const placeholderTitle = "タイトルなし"

// RenderCreatedEvents renders the reply for a successful create call:
// one line per event plus a calendar deep link for each.
func RenderCreatedEvents(events []model.CalendarEvent, link LinkFunc) string {
	if len(events) == 0 {
		return "作成対象がありません。"
	}

	lines := make([]string, 0, len(events))
	links := make([]string, 0, len(events))
	for _, ev := range events {
		title := ev.Title
		if title == "" {
			title = placeholderTitle
		}
		lines = append(lines, fmt.Sprintf("- %s: %s → %s", title, displayTimestamp(ev.Start), displayTimestamp(ev.End)))
		links = append(links, fmt.Sprintf("📅 [%s](<%s>)", title, link(title, ev.Start, ev.End)))
	}

	msg := "**✅ 作成しました**\n```\n" + strings.Join(lines, "\n") + "\n```"
	msg += "\n\n**🔗 Googleカレンダーで開く:**\n" + strings.Join(links, "\n")
	return msg
}

// RenderSchedule renders the events for a date range with deep links.
func RenderSchedule(date string, events []model.CalendarEvent, link LinkFunc) string {
	if len(events) == 0 {
		return fmt.Sprintf("**%sの予定**\n予定はありません。", date)
	}

	lines := []string{fmt.Sprintf("**📅 %sの予定**\n", date)}
	links := make([]string, 0, len(events))
	for _, ev := range events {
		title := ev.Title
		if title == "" {
			title = placeholderTitle
		}
		lines = append(lines, fmt.Sprintf("• %s `%s-%s`", title, timeOfDay(ev.Start), timeOfDay(ev.End)))
		links = append(links, fmt.Sprintf("📅 [%s](<%s>)", title, link(title, ev.Start, ev.End)))
	}

	result := strings.Join(lines, "\n")
	result += "\n\n**🔗 Googleカレンダーで開く:**\n" + strings.Join(links, "\n")
	return result
}

// timeOfDay extracts HH:MM for display when the value is a full timestamp;
// otherwise the raw value is shown as-is.
func timeOfDay(s string) string {
	if idx := strings.Index(s, "T"); idx != -1 {
		tod := s[idx+1:]
		if len(tod) > 5 {
			tod = tod[:5]
		}
		return tod
	}
	return s
}

// displayTimestamp makes a raw timestamp readable: the date/time separator
// becomes a space and fractional seconds are dropped.
func displayTimestamp(s string) string {
	s = strings.ReplaceAll(s, "T", " ")
	if idx := strings.Index(s, "."); idx != -1 {
		s = s[:idx]
	}
	return s
}
