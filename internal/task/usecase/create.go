package usecase

import (
	"context"
	"strings"

	"discord-calendar-bot/internal/gateway"
	"discord-calendar-bot/internal/report"
	"discord-calendar-bot/internal/task"
)

// CreateEvents forwards the raw task text to the gateway and renders the
// created events. The text is never parsed here — task syntax is entirely
// the backend's business.
func (uc *implUseCase) CreateEvents(ctx context.Context, input task.CreateEventsInput) (task.Reply, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.Reply{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "CreateEvents: input_length=%d", len(input.Text))

	var resp gateway.CreateResponse
	outcome := uc.gw.Call(ctx, gateway.ModeCreate, map[string]any{
		"text": input.Text,
	}, gateway.Timeout(gateway.ModeCreate), &resp)

	if outcome.Kind != gateway.OutcomeSuccess {
		return task.Reply{Text: failureText(outcome)}, nil
	}
	if !resp.OK {
		return task.Reply{Text: "エラー: " + resp.ErrorText()}, nil
	}

	uc.l.Infof(ctx, "CreateEvents: gateway created %d events", len(resp.Created))
	return task.Reply{Text: report.RenderCreatedEvents(resp.Created, uc.linkFunc(ctx))}, nil
}
