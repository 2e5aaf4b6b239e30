package usecase

import (
	"context"

	"discord-calendar-bot/internal/gateway"
	"discord-calendar-bot/internal/report"
	"discord-calendar-bot/internal/task"
)

// Progress fetches today's completion snapshot and renders the progress
// report. The snapshot is fetched fresh on every call; nothing is cached.
func (uc *implUseCase) Progress(ctx context.Context) (task.Reply, error) {
	var resp gateway.ProgressResponse
	outcome := uc.gw.Call(ctx, gateway.ModeProgress, nil, gateway.Timeout(gateway.ModeProgress), &resp)

	if outcome.Kind != gateway.OutcomeSuccess {
		return task.Reply{Text: failureText(outcome)}, nil
	}
	if !resp.OK {
		return task.Reply{Text: "❌ エラー: " + resp.ErrorText()}, nil
	}

	uc.l.Infof(ctx, "Progress: date=%s rate=%d%% completed=%d/%d",
		resp.Progress.Date, resp.Progress.CompletionRate, resp.Progress.CompletedCount, resp.Progress.TotalTasks)

	return task.Reply{Text: report.RenderProgress(resp.Progress)}, nil
}
