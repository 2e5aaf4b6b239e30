package discord

import (
	"context"
	"errors"
	"fmt"

	"discord-calendar-bot/internal/task"
	pkgDiscord "discord-calendar-bot/pkg/discord"
)

// Slash command names. Each maps to exactly one usecase pipeline and
// therefore exactly one gateway call.
const (
	cmdT2G      = "t2g"
	cmdSchedule = "schedule"
	cmdReport   = "report"
	cmdDone     = "done"
	cmdUndone   = "undone"
	cmdProgress = "progress"
	cmdFormat   = "format"
	cmdCheck    = "check"
)

// dispatch routes a slash command to its pipeline.
func (h *handler) dispatch(ctx context.Context, data *pkgDiscord.CommandData) (task.Reply, error) {
	if data == nil {
		return task.Reply{}, errors.New("interaction has no command data")
	}

	switch data.Name {
	case cmdT2G:
		return h.uc.CreateEvents(ctx, task.CreateEventsInput{
			Text: data.StringOption("text", ""),
		})
	case cmdSchedule:
		return h.uc.GetSchedule(ctx, task.ScheduleInput{
			Date: data.StringOption("date", task.DefaultScheduleDate),
			Days: data.IntOption("days", task.DefaultScheduleDays),
		})
	case cmdReport:
		return h.uc.WeeklyReport(ctx, task.ReportInput{
			Period: data.StringOption("period", task.DefaultReportPeriod),
		})
	case cmdDone:
		return h.uc.MarkComplete(ctx, task.CompletionInput{
			Task: data.StringOption("task", ""),
		})
	case cmdUndone:
		return h.uc.UnmarkComplete(ctx, task.CompletionInput{
			Task: data.StringOption("task", ""),
		})
	case cmdProgress:
		return h.uc.Progress(ctx)
	case cmdFormat:
		return h.uc.FormatEvents(ctx)
	case cmdCheck:
		return h.uc.AnalyzeEvents(ctx)
	default:
		return task.Reply{}, fmt.Errorf("unknown command %q", data.Name)
	}
}

// Commands returns the slash-command definitions registered at startup.
func Commands() []pkgDiscord.ApplicationCommand {
	return []pkgDiscord.ApplicationCommand{
		{
			Name:        cmdT2G,
			Description: "Text→Google Calendar",
			Options: []pkgDiscord.ApplicationCommandOption{
				{Type: pkgDiscord.OptionTypeString, Name: "text", Description: "改行でタスク（例: '251030 タスクA 1h A\\nタスクB 30min B'）", Required: true},
			},
		},
		{
			Name:        cmdSchedule,
			Description: "カレンダーの予定を取得",
			Options: []pkgDiscord.ApplicationCommandOption{
				{Type: pkgDiscord.OptionTypeString, Name: "date", Description: "日付（今日/明日/2025-10-30など）"},
				{Type: pkgDiscord.OptionTypeInteger, Name: "days", Description: "何日分取得するか（デフォルト: 1）"},
			},
		},
		{
			Name:        cmdReport,
			Description: "週間レポートを取得",
			Options: []pkgDiscord.ApplicationCommandOption{
				{Type: pkgDiscord.OptionTypeString, Name: "period", Description: "期間（week/month）"},
			},
		},
		{
			Name:        cmdDone,
			Description: "タスクを完了にマーク（✓を追加）",
			Options: []pkgDiscord.ApplicationCommandOption{
				{Type: pkgDiscord.OptionTypeString, Name: "task", Description: "完了したタスク名（部分一致）", Required: true},
			},
		},
		{
			Name:        cmdUndone,
			Description: "タスクの完了マークを解除（✓を削除）",
			Options: []pkgDiscord.ApplicationCommandOption{
				{Type: pkgDiscord.OptionTypeString, Name: "task", Description: "完了を取り消すタスク名（部分一致）", Required: true},
			},
		},
		{
			Name:        cmdProgress,
			Description: "今日のタスク進捗を表示",
		},
		{
			Name:        cmdFormat,
			Description: "既存カレンダーイベントを自動フォーマット（A/B/C → ★）",
		},
		{
			Name:        cmdCheck,
			Description: "A/B/C付きイベントを確認（手動変更の参考用）",
		},
	}
}
