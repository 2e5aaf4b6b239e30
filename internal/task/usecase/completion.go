package usecase

import (
	"context"
	"strings"

	"discord-calendar-bot/internal/gateway"
	"discord-calendar-bot/internal/task"
)

// Default confirmation texts when the gateway omits its message field.
const (
	msgMarked        = "タスクを完了にマークしました"
	msgMarkMissing   = "タスクが見つかりませんでした"
	msgUnmarked      = "タスクの完了を取り消しました"
	msgUnmarkMissing = "完了タスクが見つかりませんでした"
)

// MarkComplete marks a task done by partial title match. A "not found"
// answer is a normal domain outcome, surfaced verbatim with a warning
// prefix — not an error.
func (uc *implUseCase) MarkComplete(ctx context.Context, input task.CompletionInput) (task.Reply, error) {
	return uc.completion(ctx, gateway.ModeMarkComplete, input, "✅ ", msgMarked, msgMarkMissing)
}

// UnmarkComplete reverses a completion mark.
func (uc *implUseCase) UnmarkComplete(ctx context.Context, input task.CompletionInput) (task.Reply, error) {
	return uc.completion(ctx, gateway.ModeUnmarkComplete, input, "↩️ ", msgUnmarked, msgUnmarkMissing)
}

func (uc *implUseCase) completion(ctx context.Context, mode string, input task.CompletionInput, okPrefix, okDefault, missDefault string) (task.Reply, error) {
	if strings.TrimSpace(input.Task) == "" {
		return task.Reply{}, task.ErrEmptyTask
	}

	uc.l.Infof(ctx, "completion: mode=%s task=%q", mode, input.Task)

	var resp gateway.CompletionResponse
	outcome := uc.gw.Call(ctx, mode, map[string]any{
		"task": input.Task,
	}, gateway.Timeout(mode), &resp)

	if outcome.Kind != gateway.OutcomeSuccess {
		return task.Reply{Text: failureText(outcome)}, nil
	}

	msg := resp.Message
	if resp.OK {
		if msg == "" {
			msg = okDefault
		}
		return task.Reply{Text: okPrefix + msg}, nil
	}
	if msg == "" {
		msg = missDefault
	}
	return task.Reply{Text: "⚠️ " + msg}, nil
}
