package task

import "context"

// UseCase is the business-logic interface for the task-reporting domain.
// Each operation performs exactly one gateway call, renders the response,
// and returns the user-facing reply. Gateway failures of any kind come back
// as rendered reply text, not as errors; a non-nil error means an internal
// defect the delivery layer must convert to a generic apology.
type UseCase interface {
	// CreateEvents forwards raw task text to the gateway (mode=create) and
	// renders the created events with calendar deep links.
	CreateEvents(ctx context.Context, input CreateEventsInput) (Reply, error)

	// GetSchedule fetches events for a date range (mode=get_schedule).
	GetSchedule(ctx context.Context, input ScheduleInput) (Reply, error)

	// WeeklyReport fetches the hours report for a period (mode=weekly_report).
	WeeklyReport(ctx context.Context, input ReportInput) (Reply, error)

	// MarkComplete marks a task done by partial title match (mode=mark_complete).
	MarkComplete(ctx context.Context, input CompletionInput) (Reply, error)

	// UnmarkComplete reverses a completion mark (mode=unmark_complete).
	UnmarkComplete(ctx context.Context, input CompletionInput) (Reply, error)

	// Progress fetches and renders today's completion snapshot (mode=progress).
	Progress(ctx context.Context) (Reply, error)

	// FormatEvents bulk-formats existing events (mode=format_events).
	FormatEvents(ctx context.Context) (Reply, error)

	// AnalyzeEvents reports which events still need formatting (mode=analyze_events).
	AnalyzeEvents(ctx context.Context) (Reply, error)
}
