package gcallink

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	pkgLog "discord-calendar-bot/pkg/log"
)

const (
	// FallbackURL is returned whenever a timestamp cannot be parsed.
	// The user still gets a working link (the calendar home page).
	FallbackURL = "https://calendar.google.com/"

	renderBaseURL = "https://calendar.google.com/calendar/render"

	// The gateway emits JST wall-clock times with no offset. Google expects
	// the dates parameter in UTC, so we subtract a fixed 9 hours. This is
	// not a timezone-aware conversion; JST has no DST, so the fixed shift
	// is correct for the supported locale.
	jstOffset = 9 * time.Hour

	googleTimeFormat = "20060102T150405Z"
)

// Generator builds Google Calendar event-creation deep links.
type Generator struct {
	l pkgLog.Logger
}

// New creates a link Generator.
func New(l pkgLog.Logger) *Generator {
	return &Generator{l: l}
}

// Generate builds a calendar deep link from an event title and the raw
// start/end strings the gateway returned. It never fails: on any parse
// error it logs the problem and returns FallbackURL.
func (g *Generator) Generate(ctx context.Context, title, start, end string) string {
	startDT, err := parseTimestamp(start)
	if err != nil {
		g.l.Warnf(ctx, "gcallink: unparseable start %q: %v", start, err)
		return FallbackURL
	}
	endDT, err := parseTimestamp(end)
	if err != nil {
		g.l.Warnf(ctx, "gcallink: unparseable end %q: %v", end, err)
		return FallbackURL
	}
	return g.GenerateFromTimes(ctx, title, startDT, endDT)
}

// GenerateFromTimes builds the deep link from already-parsed timestamps.
// The inputs are treated as naive JST wall-clock times regardless of their
// Location.
func (g *Generator) GenerateFromTimes(ctx context.Context, title string, start, end time.Time) string {
	startUTC := asNaive(start).Add(-jstOffset)
	endUTC := asNaive(end).Add(-jstOffset)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", title)
	params.Set("dates", fmt.Sprintf("%s/%s",
		startUTC.Format(googleTimeFormat),
		endUTC.Format(googleTimeFormat)))
	params.Set("ctz", "Asia/Tokyo")

	return renderBaseURL + "?" + params.Encode()
}

// asNaive drops the location, keeping the wall-clock fields.
func asNaive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// parseTimestamp accepts the timestamp shapes the gateway produces:
// ISO-8601 with or without a trailing Z or offset, with or without
// fractional seconds, and bare dates. The offset, if present, is discarded —
// the wall-clock reading is what matters.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	s = strings.TrimSuffix(s, "Z")
	// Strip a +HH:MM / -HH:MM suffix, careful not to eat the date dashes.
	if idx := strings.LastIndexAny(s, "+-"); idx > 10 {
		s = s[:idx]
	}
	// Drop fractional seconds.
	if idx := strings.Index(s, "."); idx != -1 {
		s = s[:idx]
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format %q", s)
}
