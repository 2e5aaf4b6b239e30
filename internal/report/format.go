package report

import (
	"fmt"
	"strings"

	"discord-calendar-bot/internal/model"
)

// maxListedChanges bounds how many before/after pairs a format reply shows.
const maxListedChanges = 5

// RenderFormatResult renders the outcome of bulk-formatting calendar
// events. Exactly one of three branches applies: conversions happened,
// everything was already formatted, or nothing matched. The wording of
// each branch is part of the user-facing contract.
func RenderFormatResult(r model.FormatResult) string {
	var lines []string

	switch {
	case r.Converted > 0:
		lines = append(lines, fmt.Sprintf("🌟 **%d件のイベントを自動フォーマットしました！**\n", r.Converted))
		for i, change := range r.Results {
			if i >= maxListedChanges {
				break
			}
			lines = append(lines, fmt.Sprintf("`%d.` **%s**", i+1, change.Date))
			lines = append(lines, fmt.Sprintf("   `%s` → `%s`", change.Original, change.Converted))
		}
		if n := len(r.Results) - maxListedChanges; n > 0 {
			lines = append(lines, fmt.Sprintf("\n... 他 **%d件** も変換されました", n))
		}
		lines = append(lines, fmt.Sprintf("\n📋 **スキップ:** %d件（既にフォーマット済み）", r.Skipped))

	case r.Skipped > 0:
		lines = append(lines,
			"✅ **すべてのイベントは既にフォーマット済みです**",
			fmt.Sprintf("📋 **確認済み:** %d件のイベント", r.Skipped),
			"",
			"💡 **新しいイベントには自動的に★が付与されます**",
		)

	default:
		lines = append(lines,
			"📅 **対象となるイベントが見つかりませんでした**",
			"",
			"🔍 **確認範囲:** 今日から1週間",
			"💡 **新しくタスクを作成すると自動で★が付きます**",
		)
	}

	lines = append(lines,
		"\n📝 **フォーマットルール:**",
		"• **A** → ★★★ (最高優先度)",
		"• **B** → ★★ (中優先度)",
		"• **C** → ★ (低優先度)",
		"• **自動判定** 緊急・会議 → ★★★",
	)

	return strings.Join(lines, "\n")
}

// RenderAnalyzeResult renders the analyze_events summary with guidance on
// what to do next.
func RenderAnalyzeResult(r model.AnalyzeResult) string {
	s := r.Summary

	lines := []string{
		"🔍 **A/B/C付きイベント確認結果**",
		"",
		"📊 **概要:**",
		fmt.Sprintf("• 変換が必要: **%d件**", s.NeedsConversion),
		fmt.Sprintf("• 既に変換済み: **%d件**", s.AlreadyConverted),
		fmt.Sprintf("• 編集不可: **%d件**", s.CannotEdit),
	}

	switch {
	case s.NeedsConversion > 0:
		lines = append(lines,
			"",
			"⚠️ **`/format`コマンドで自動変換可能です！**",
			fmt.Sprintf("💡 `/format`を実行すると%d件が★に変換されます", s.NeedsConversion),
		)
	case s.AlreadyConverted > 0:
		lines = append(lines,
			"",
			"✅ **すべてのA/B/Cイベントは★に変換済みです**",
			fmt.Sprintf("🎉 %d件のイベントが既にフォーマット済み", s.AlreadyConverted),
		)
	default:
		lines = append(lines,
			"",
			"💡 **A/B/C付きイベントは見つかりませんでした**",
			"🆕 今後作成するタスクには自動で★が付与されます",
		)
	}

	lines = append(lines,
		"",
		"🔄 **使い方:**",
		"• `/format`: 既存A/B/Cを★に一括変換",
		"• `/t2g`: 新規タスク作成（自動★変換付き）",
	)

	return strings.Join(lines, "\n")
}

// RenderAnalyzeFallback is the manual-guidance text used when the analyze
// payload could not be read.
func RenderAnalyzeFallback() string {
	return strings.Join([]string{
		"🔍 **A/B/C付きイベント確認**",
		"",
		"📋 **手動確認手順:**",
		"1. Googleカレンダーを開く",
		"2. 検索ボックスで「A」「B」「C」を検索",
		"3. `/format`コマンドで自動変換を試す",
		"",
		"💡 **今後作成するタスクは自動で★変換されます**",
	}, "\n")
}
