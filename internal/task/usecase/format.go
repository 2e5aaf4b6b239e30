package usecase

import (
	"context"

	"discord-calendar-bot/internal/gateway"
	"discord-calendar-bot/internal/report"
	"discord-calendar-bot/internal/task"
)

// FormatEvents asks the gateway to bulk-format existing calendar events
// (A/B/C priority markers to ★ glyphs) over a two-month window and renders
// the result.
func (uc *implUseCase) FormatEvents(ctx context.Context) (task.Reply, error) {
	var resp gateway.FormatResponse
	outcome := uc.gw.Call(ctx, gateway.ModeFormatEvents, map[string]any{
		"days_back":    task.FormatDaysBack,
		"days_forward": task.FormatDaysForward,
	}, gateway.Timeout(gateway.ModeFormatEvents), &resp)

	if outcome.Kind != gateway.OutcomeSuccess {
		return task.Reply{Text: failureText(outcome)}, nil
	}
	if !resp.OK {
		return task.Reply{Text: "❌ **エラーが発生しました**\n詳細: " + resp.ErrorText()}, nil
	}

	uc.l.Infof(ctx, "FormatEvents: converted=%d skipped=%d", resp.Result.Converted, resp.Result.Skipped)
	return task.Reply{Text: report.RenderFormatResult(resp.Result)}, nil
}

// AnalyzeEvents reports which events still carry raw A/B/C markers. An
// unusable payload degrades to the manual-guidance text rather than an
// error reply.
func (uc *implUseCase) AnalyzeEvents(ctx context.Context) (task.Reply, error) {
	var resp gateway.AnalyzeResponse
	outcome := uc.gw.Call(ctx, gateway.ModeAnalyzeEvents, nil, gateway.Timeout(gateway.ModeAnalyzeEvents), &resp)

	if outcome.Kind != gateway.OutcomeSuccess {
		return task.Reply{Text: failureText(outcome)}, nil
	}
	if !resp.OK {
		uc.l.Warnf(ctx, "AnalyzeEvents: gateway reported not ok: %s", resp.ErrorText())
		return task.Reply{Text: report.RenderAnalyzeFallback()}, nil
	}

	return task.Reply{Text: report.RenderAnalyzeResult(resp.Result)}, nil
}
