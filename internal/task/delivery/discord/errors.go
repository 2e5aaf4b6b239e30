package discord

import (
	"errors"

	"discord-calendar-bot/internal/task"
)

// msgApology is the generic reply for internal defects (renderer bugs,
// panics, unknown commands). The user must always get an answer, even when
// the failure is ours.
const msgApology = "💥 **予期しないエラーが発生しました**\n管理者に報告してください。"

// errorMessage returns a user-facing error string for the given error.
// Known input errors get a specific hint; everything else is the apology.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return "⚠️ タスクのテキストを入力してください。"
	case errors.Is(err, task.ErrEmptyTask):
		return "⚠️ タスク名を入力してください。"
	default:
		return msgApology
	}
}
