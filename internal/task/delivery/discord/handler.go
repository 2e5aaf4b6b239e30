package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgDiscord "discord-calendar-bot/pkg/discord"
	pkgResponse "discord-calendar-bot/pkg/response"
)

// HandleInteraction is the Gin handler for Discord interaction webhooks.
// Discord expects an answer within 3 seconds, but a gateway call can take
// up to 30 — so application commands are acknowledged immediately with a
// deferred response and resolved in a background goroutine that edits the
// original reply when the pipeline finishes.
func (h *handler) HandleInteraction(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "discord handler: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Signature check first: Discord probes the endpoint with bad
	// signatures and requires a 401 here.
	sig := c.GetHeader("X-Signature-Ed25519")
	timestamp := c.GetHeader("X-Signature-Timestamp")
	if err := h.security.ValidateSignature(body, sig, timestamp); err != nil {
		h.l.Warnf(ctx, "discord handler: signature rejected: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	if err := h.security.CheckRateLimit(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "discord handler: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "rate limit exceeded"})
		return
	}

	var interaction pkgDiscord.Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		h.l.Errorf(ctx, "discord handler: failed to parse interaction: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	switch interaction.Type {
	case pkgDiscord.InteractionTypePing:
		c.JSON(http.StatusOK, pkgDiscord.InteractionResponse{Type: pkgDiscord.ResponseTypePong})

	case pkgDiscord.InteractionTypeApplicationCommand:
		// Acknowledged: deferred ephemeral placeholder, answered within
		// the 3-second window.
		c.JSON(http.StatusOK, pkgDiscord.InteractionResponse{
			Type: pkgDiscord.ResponseTypeDeferredChannelMessage,
			Data: &pkgDiscord.ResponseData{Flags: pkgDiscord.MessageFlagEphemeral},
		})

		// Snapshot before spawning to avoid races on the gin context.
		in := interaction
		go h.resolve(context.Background(), in)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "unsupported interaction type"})
	}
}

// resolve runs the command pipeline and delivers the reply, transitioning
// the invocation Acknowledged → Resolved → Closed. Whatever happens — a
// usecase error or even a panic — the interaction gets exactly one answer.
func (h *handler) resolve(ctx context.Context, in pkgDiscord.Interaction) {
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "discord handler: panic resolving %s: %v", commandName(in), r)
			h.deliver(ctx, in, msgApology)
		}
	}()

	reply, err := h.dispatch(ctx, in.Data)
	if err != nil {
		h.l.Errorf(ctx, "discord handler: %s failed: %v", commandName(in), err)
		h.deliver(ctx, in, errorMessage(err))
		return
	}

	h.deliver(ctx, in, reply.Text)
}

// deliver edits the deferred reply; if the edit fails (expired or
// invalidated interaction) it falls back to a followup message, and if
// that fails too the result is dropped — never raised.
func (h *handler) deliver(ctx context.Context, in pkgDiscord.Interaction, text string) {
	appID := in.ApplicationID
	if appID == "" {
		appID = h.applicationID
	}

	if err := h.bot.EditOriginalResponse(ctx, appID, in.Token, text); err != nil {
		h.l.Warnf(ctx, "discord handler: edit failed, trying followup: %v", err)
		if err := h.bot.CreateFollowupMessage(ctx, appID, in.Token, text, true); err != nil {
			h.l.Errorf(ctx, "discord handler: followup also failed, reply dropped: %v", err)
		}
	}
}

func commandName(in pkgDiscord.Interaction) string {
	if in.Data == nil {
		return "<no command>"
	}
	return in.Data.Name
}
