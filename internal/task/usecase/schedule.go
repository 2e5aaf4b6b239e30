package usecase

import (
	"context"

	"discord-calendar-bot/internal/gateway"
	"discord-calendar-bot/internal/report"
	"discord-calendar-bot/internal/task"
)

// GetSchedule fetches and renders the events for a date range.
func (uc *implUseCase) GetSchedule(ctx context.Context, input task.ScheduleInput) (task.Reply, error) {
	date := input.Date
	if date == "" {
		date = task.DefaultScheduleDate
	}
	days := input.Days
	if days <= 0 {
		days = task.DefaultScheduleDays
	}

	uc.l.Infof(ctx, "GetSchedule: date=%s days=%d", date, days)

	var resp gateway.ScheduleResponse
	outcome := uc.gw.Call(ctx, gateway.ModeGetSchedule, map[string]any{
		"date": date,
		"days": days,
	}, gateway.Timeout(gateway.ModeGetSchedule), &resp)

	if outcome.Kind != gateway.OutcomeSuccess {
		return task.Reply{Text: failureText(outcome)}, nil
	}
	if !resp.OK {
		return task.Reply{Text: "エラー: " + resp.ErrorText()}, nil
	}

	return task.Reply{Text: report.RenderSchedule(date, resp.Events, uc.linkFunc(ctx))}, nil
}

// WeeklyReport fetches and renders the hours report for a period.
func (uc *implUseCase) WeeklyReport(ctx context.Context, input task.ReportInput) (task.Reply, error) {
	period := input.Period
	if period == "" {
		period = task.DefaultReportPeriod
	}

	uc.l.Infof(ctx, "WeeklyReport: period=%s", period)

	var resp gateway.ReportResponse
	outcome := uc.gw.Call(ctx, gateway.ModeWeeklyReport, map[string]any{
		"period": period,
	}, gateway.Timeout(gateway.ModeWeeklyReport), &resp)

	if outcome.Kind != gateway.OutcomeSuccess {
		return task.Reply{Text: failureText(outcome)}, nil
	}
	if !resp.OK {
		return task.Reply{Text: "エラー: " + resp.ErrorText()}, nil
	}

	return task.Reply{Text: report.RenderWeeklyReport(resp.Report)}, nil
}
