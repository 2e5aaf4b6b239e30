package report_test

import (
	"strings"
	"testing"

	"discord-calendar-bot/internal/model"
	"discord-calendar-bot/internal/report"
)

func TestRenderWeeklyReport(t *testing.T) {
	t.Run("all buckets always present", func(t *testing.T) {
		got := report.RenderWeeklyReport(model.WeeklyReport{
			Total:      3.5,
			ByPriority: map[string]float64{"A": 3.5},
		})

		for _, want := range []string{
			"**📊 週間レポート**",
			"**総作業時間:** 3.5時間",
			"★★★ (A): 3.5時間",
			"★★ (B): 0.0時間",
			"★ (C): 0.0時間",
			"その他: 0.0時間",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("missing %q in:\n%s", want, got)
			}
		}
	})

	t.Run("empty report still shows zeroed buckets", func(t *testing.T) {
		got := report.RenderWeeklyReport(model.WeeklyReport{})
		if !strings.Contains(got, "★★★ (A): 0.0時間") {
			t.Errorf("missing zero A bucket: %q", got)
		}
		if strings.Contains(got, "日別作業時間") {
			t.Errorf("day breakdown should be absent when empty: %q", got)
		}
	})

	t.Run("unknown labels fold into other", func(t *testing.T) {
		got := report.RenderWeeklyReport(model.WeeklyReport{
			Total: 6,
			ByPriority: map[string]float64{
				"A":     2,
				"D":     1.5,
				"other": 2.5,
			},
		})
		if !strings.Contains(got, "その他: 4.0時間") {
			t.Errorf("unknown labels not folded: %q", got)
		}
	})

	t.Run("days sorted ascending", func(t *testing.T) {
		got := report.RenderWeeklyReport(model.WeeklyReport{
			Total: 3,
			ByDay: map[string]float64{
				"2025-10-29": 1,
				"2025-10-27": 1,
				"2025-10-28": 1,
			},
		})
		i27 := strings.Index(got, "2025-10-27")
		i28 := strings.Index(got, "2025-10-28")
		i29 := strings.Index(got, "2025-10-29")
		if i27 == -1 || i28 == -1 || i29 == -1 {
			t.Fatalf("missing day lines:\n%s", got)
		}
		if !(i27 < i28 && i28 < i29) {
			t.Errorf("days out of order:\n%s", got)
		}
	})
}
