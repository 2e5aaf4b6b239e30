package usecase

import (
	"context"
	"time"

	"discord-calendar-bot/internal/gateway"
	"discord-calendar-bot/internal/report"
	"discord-calendar-bot/pkg/gcallink"
	pkgLog "discord-calendar-bot/pkg/log"
)

// Gateway is the slice of the gateway client this package needs.
type Gateway interface {
	Call(ctx context.Context, mode string, payload map[string]any, timeout time.Duration, out any) gateway.Outcome
}

type implUseCase struct {
	l     pkgLog.Logger
	gw    Gateway
	links *gcallink.Generator
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, gw Gateway, links *gcallink.Generator) *implUseCase {
	return &implUseCase{
		l:     l,
		gw:    gw,
		links: links,
	}
}

// linkFunc binds the link generator and the call context into the pure
// renderer callback shape.
func (uc *implUseCase) linkFunc(ctx context.Context) report.LinkFunc {
	return func(title, start, end string) string {
		return uc.links.Generate(ctx, title, start, end)
	}
}
