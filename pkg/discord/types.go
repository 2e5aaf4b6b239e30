package discord

import "encoding/json"

// Interaction types (Discord API).
const (
	InteractionTypePing               = 1
	InteractionTypeApplicationCommand = 2
)

// Interaction callback types.
const (
	ResponseTypePong                   = 1
	ResponseTypeChannelMessage         = 4
	ResponseTypeDeferredChannelMessage = 5
)

// MessageFlagEphemeral makes a reply visible only to the invoking user.
const MessageFlagEphemeral = 64

// Application command option types.
const (
	OptionTypeString  = 3
	OptionTypeInteger = 4
)

// Interaction is an incoming interaction webhook payload.
type Interaction struct {
	ID            string       `json:"id"`
	ApplicationID string       `json:"application_id"`
	Type          int          `json:"type"`
	Token         string       `json:"token"`
	ChannelID     string       `json:"channel_id,omitempty"`
	Data          *CommandData `json:"data,omitempty"`
}

// CommandData is the slash-command payload of an interaction.
type CommandData struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Options []CommandOption `json:"options,omitempty"`
}

// CommandOption is a single argument supplied with a slash command.
// Value is raw because Discord sends strings and numbers in the same field.
type CommandOption struct {
	Name  string          `json:"name"`
	Type  int             `json:"type"`
	Value json.RawMessage `json:"value"`
}

// StringOption returns the named string option, or def when absent or
// not a string.
func (d *CommandData) StringOption(name, def string) string {
	for _, opt := range d.Options {
		if opt.Name != name {
			continue
		}
		var s string
		if err := json.Unmarshal(opt.Value, &s); err == nil {
			return s
		}
	}
	return def
}

// IntOption returns the named integer option, or def when absent or not
// a number.
func (d *CommandData) IntOption(name string, def int) int {
	for _, opt := range d.Options {
		if opt.Name != name {
			continue
		}
		var n float64
		if err := json.Unmarshal(opt.Value, &n); err == nil {
			return int(n)
		}
	}
	return def
}

// InteractionResponse is the immediate reply to an interaction.
type InteractionResponse struct {
	Type int           `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

// ResponseData is the message part of an interaction response.
type ResponseData struct {
	Content string `json:"content,omitempty"`
	Flags   int    `json:"flags,omitempty"`
}

// WebhookMessage is the body for followup messages and response edits.
type WebhookMessage struct {
	Content string `json:"content"`
	Flags   int    `json:"flags,omitempty"`
}

// ChannelMessage is the body for posting to a channel.
type ChannelMessage struct {
	Content string `json:"content"`
}

// ApplicationCommand is a slash-command definition for registration.
type ApplicationCommand struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Options     []ApplicationCommandOption `json:"options,omitempty"`
}

// ApplicationCommandOption declares one argument of a slash command.
type ApplicationCommandOption struct {
	Type        int    `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
}
