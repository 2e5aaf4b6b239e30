package discord

import (
	"context"

	"github.com/gin-gonic/gin"

	"discord-calendar-bot/internal/task"
	pkgLog "discord-calendar-bot/pkg/log"
)

// Handler is the interface for the Discord interactions delivery handler.
type Handler interface {
	HandleInteraction(c *gin.Context)
}

// Bot is the slice of the Discord client the dispatcher needs to answer
// an interaction after the deferred acknowledgment.
type Bot interface {
	EditOriginalResponse(ctx context.Context, applicationID, interactionToken, content string) error
	CreateFollowupMessage(ctx context.Context, applicationID, interactionToken, content string, ephemeral bool) error
}

type handler struct {
	l             pkgLog.Logger
	uc            task.UseCase
	bot           Bot
	security      *SecurityValidator
	applicationID string
}

// New creates a new Discord interactions delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, bot Bot, security *SecurityValidator, applicationID string) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		bot:           bot,
		security:      security,
		applicationID: applicationID,
	}
}
