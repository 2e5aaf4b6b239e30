package usecase

import (
	"fmt"

	"discord-calendar-bot/internal/gateway"
)

// User-facing failure texts, one per outcome class. Timeout is deliberately
// distinct from the hard communication error so the user knows retrying
// later may help.
const (
	msgTimeout = "⏱️ **タイムアウト**\nサーバーの応答が遅れています。\nしばらく待ってから再度お試しください。"

	msgTransport = "🌐 **通信エラー:** サーバーとの通信に失敗しました。\nしばらく待ってから再試行してください。"
)

// failureText maps a non-success outcome to reply text.
func failureText(o gateway.Outcome) string {
	switch o.Kind {
	case gateway.OutcomeTimeout:
		return msgTimeout
	case gateway.OutcomeUpstreamError:
		msg := fmt.Sprintf("🌐 **通信エラー:** HTTP Error %d", o.HTTPStatus)
		if o.BodyExcerpt != "" {
			msg += fmt.Sprintf(": %s", o.BodyExcerpt)
		}
		return msg
	default:
		return msgTransport
	}
}
