package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is a minimal Discord REST API client covering what the bot needs:
// interaction response edits, followup messages, channel broadcasts, and
// slash-command registration.
type Client struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a Discord client with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		apiURL:     "https://discord.com/api/v10",
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Discord API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// CreateMessage posts a message to a channel. Requires the bot token.
func (c *Client) CreateMessage(ctx context.Context, channelID, content string) error {
	url := fmt.Sprintf("%s/channels/%s/messages", c.apiURL, channelID)
	return c.post(ctx, url, true, ChannelMessage{Content: content})
}

// EditOriginalResponse rewrites the deferred interaction reply. Webhook
// endpoints authenticate via the interaction token in the URL, not the bot
// token.
func (c *Client) EditOriginalResponse(ctx context.Context, applicationID, interactionToken, content string) error {
	url := fmt.Sprintf("%s/webhooks/%s/%s/messages/@original", c.apiURL, applicationID, interactionToken)
	return c.do(ctx, http.MethodPatch, url, false, WebhookMessage{Content: content})
}

// CreateFollowupMessage sends a new followup message on an interaction.
// Used as the fallback delivery path when editing the original fails.
func (c *Client) CreateFollowupMessage(ctx context.Context, applicationID, interactionToken, content string, ephemeral bool) error {
	url := fmt.Sprintf("%s/webhooks/%s/%s", c.apiURL, applicationID, interactionToken)
	msg := WebhookMessage{Content: content}
	if ephemeral {
		msg.Flags = MessageFlagEphemeral
	}
	return c.post(ctx, url, false, msg)
}

// BulkOverwriteCommands replaces the application's slash-command set.
// With a guildID the commands are registered guild-scoped (instant
// propagation); otherwise globally.
func (c *Client) BulkOverwriteCommands(ctx context.Context, applicationID, guildID string, commands []ApplicationCommand) error {
	url := fmt.Sprintf("%s/applications/%s/commands", c.apiURL, applicationID)
	if guildID != "" {
		url = fmt.Sprintf("%s/applications/%s/guilds/%s/commands", c.apiURL, applicationID, guildID)
	}
	return c.do(ctx, http.MethodPut, url, true, commands)
}

func (c *Client) post(ctx context.Context, url string, authed bool, payload any) error {
	return c.do(ctx, http.MethodPost, url, authed, payload)
}

func (c *Client) do(ctx context.Context, method, url string, authed bool, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal discord request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", fmt.Sprintf("Bot %s", c.token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call discord API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
