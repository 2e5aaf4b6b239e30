package gateway

import (
	"time"

	"discord-calendar-bot/internal/model"
)

// Gateway operation modes. The mode string selects which backend operation
// a request performs.
const (
	ModeCreate         = "create"
	ModeGetSchedule    = "get_schedule"
	ModeWeeklyReport   = "weekly_report"
	ModeMarkComplete   = "mark_complete"
	ModeUnmarkComplete = "unmark_complete"
	ModeProgress       = "progress"
	ModeFormatEvents   = "format_events"
	ModeAnalyzeEvents  = "analyze_events"
)

// Per-mode call deadlines. Polling modes are short; bulk event work gets
// the full 30 seconds the backend occasionally needs.
var modeTimeouts = map[string]time.Duration{
	ModeCreate:         30 * time.Second,
	ModeGetSchedule:    30 * time.Second,
	ModeWeeklyReport:   30 * time.Second,
	ModeMarkComplete:   30 * time.Second,
	ModeUnmarkComplete: 30 * time.Second,
	ModeProgress:       15 * time.Second,
	ModeFormatEvents:   20 * time.Second,
	ModeAnalyzeEvents:  15 * time.Second,
}

const defaultTimeout = 30 * time.Second

// Timeout returns the deadline to use for the given mode.
func Timeout(mode string) time.Duration {
	if d, ok := modeTimeouts[mode]; ok {
		return d
	}
	return defaultTimeout
}

// ---- Response envelopes, one per mode ----
//
// Every gateway response carries ok and, when ok is false, error/message.
// The payload field differs per mode.

// Envelope is the common part of every gateway response.
type Envelope struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorText returns the backend-supplied failure text, preferring error
// over message, with a stable default when both are absent.
func (e Envelope) ErrorText() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return "Unknown error"
}

// CreateResponse is the body for mode=create.
type CreateResponse struct {
	Envelope
	Created []model.CalendarEvent `json:"created"`
}

// ScheduleResponse is the body for mode=get_schedule.
type ScheduleResponse struct {
	Envelope
	Events []model.CalendarEvent `json:"events"`
}

// ReportResponse is the body for mode=weekly_report.
type ReportResponse struct {
	Envelope
	Report model.WeeklyReport `json:"report"`
}

// CompletionResponse is the body for mode=mark_complete / unmark_complete.
// The message field doubles as the success confirmation text.
type CompletionResponse struct {
	Envelope
}

// ProgressResponse is the body for mode=progress.
type ProgressResponse struct {
	Envelope
	Progress model.ProgressSnapshot `json:"progress"`
}

// FormatResponse is the body for mode=format_events.
type FormatResponse struct {
	Envelope
	Result model.FormatResult `json:"result"`
}

// AnalyzeResponse is the body for mode=analyze_events.
type AnalyzeResponse struct {
	Envelope
	Result model.AnalyzeResult `json:"result"`
}
