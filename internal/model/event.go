package model

// Environment names used across the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// CalendarEvent is a single event as returned by the scheduling gateway.
// Start/End are kept as the raw strings the gateway produced (ISO-8601 or a
// bare time-of-day) — the renderers and the link generator own the parsing.
// Immutable once received.
type CalendarEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ProgressSnapshot is today's completion state. Fetched fresh on every
// invocation, never cached.
type ProgressSnapshot struct {
	Date           string          `json:"date"`
	TotalTasks     int             `json:"totalTasks"`
	CompletedCount int             `json:"completedCount"`
	PendingCount   int             `json:"pendingCount"`
	CompletionRate int             `json:"completionRate"` // 0-100
	Completed      []CalendarEvent `json:"completed"`
	Pending        []CalendarEvent `json:"pending"`
}

// WeeklyReport aggregates worked hours for a period.
type WeeklyReport struct {
	Total      float64            `json:"total"`
	ByPriority map[string]float64 `json:"byPriority"` // keys: "A", "B", "C", "other"
	ByDay      map[string]float64 `json:"byDay"`      // date string -> hours
}

// FormatChange is one title rewrite performed by the format_events operation.
type FormatChange struct {
	Original  string `json:"original"`
	Converted string `json:"converted"`
	Date      string `json:"date"`
}

// FormatResult is the outcome of bulk-formatting existing calendar events.
type FormatResult struct {
	Converted int            `json:"converted"`
	Skipped   int            `json:"skipped"`
	Results   []FormatChange `json:"results"`
}

// AnalyzeSummary counts events by their conversion state.
type AnalyzeSummary struct {
	NeedsConversion  int `json:"needsConversion"`
	AlreadyConverted int `json:"alreadyConverted"`
	CannotEdit       int `json:"cannotEdit"`
}

// AnalyzeResult is the outcome of the analyze_events operation.
type AnalyzeResult struct {
	Summary AnalyzeSummary `json:"summary"`
}
