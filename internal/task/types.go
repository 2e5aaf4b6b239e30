package task

// CreateEventsInput is the input for event creation.
type CreateEventsInput struct {
	Text string // raw task lines, parsed entirely by the gateway
}

// ScheduleInput selects the date range for a schedule lookup.
type ScheduleInput struct {
	Date string // "今日", "明日", or an explicit date like "2025-10-30"
	Days int    // how many days to fetch
}

// ReportInput selects the reporting period.
type ReportInput struct {
	Period string // "week" or "month"
}

// CompletionInput names the task to (un)mark, matched partially by the gateway.
type CompletionInput struct {
	Task string
}

// Reply is the rendered user-facing text for one command invocation.
type Reply struct {
	Text string
}

// Defaults applied when a command omits its optional arguments.
const (
	DefaultScheduleDate = "今日"
	DefaultScheduleDays = 1
	DefaultReportPeriod = "week"

	// format_events scans one month back and one month forward.
	FormatDaysBack    = 30
	FormatDaysForward = 30
)
