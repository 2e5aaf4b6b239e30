package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"discord-calendar-bot/internal/gateway"
	"discord-calendar-bot/internal/model"
	"discord-calendar-bot/internal/task"
	"discord-calendar-bot/internal/task/usecase"
	"discord-calendar-bot/pkg/gcallink"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockGateway records the call and hands back a canned outcome, filling out
// through the fill callback when one is set.
type mockGateway struct {
	outcome gateway.Outcome
	fill    func(out any)

	gotMode    string
	gotPayload map[string]any
	gotTimeout time.Duration
}

func (m *mockGateway) Call(ctx context.Context, mode string, payload map[string]any, timeout time.Duration, out any) gateway.Outcome {
	m.gotMode = mode
	m.gotPayload = payload
	m.gotTimeout = timeout
	if m.fill != nil && out != nil {
		m.fill(out)
	}
	return m.outcome
}

func newUseCase(gw *mockGateway) task.UseCase {
	l := &mockLogger{}
	return usecase.New(l, gw, gcallink.New(l))
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestCreateEvents(t *testing.T) {
	t.Run("empty input is rejected locally", func(t *testing.T) {
		gw := &mockGateway{}
		uc := newUseCase(gw)

		_, err := uc.CreateEvents(context.Background(), task.CreateEventsInput{Text: "   "})
		if err != task.ErrEmptyInput {
			t.Fatalf("err = %v, want ErrEmptyInput", err)
		}
		if gw.gotMode != "" {
			t.Error("gateway should not be called for empty input")
		}
	})

	t.Run("renders created events", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				resp := out.(*gateway.CreateResponse)
				resp.OK = true
				resp.Created = []model.CalendarEvent{
					{Title: "★★★ 会議", Start: "2025-10-30T09:00:00", End: "2025-10-30T10:00:00"},
				}
			},
		}
		uc := newUseCase(gw)

		reply, err := uc.CreateEvents(context.Background(), task.CreateEventsInput{Text: "会議 明日9時"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gw.gotMode != gateway.ModeCreate {
			t.Errorf("mode = %q", gw.gotMode)
		}
		if gw.gotPayload["text"] != "会議 明日9時" {
			t.Errorf("payload = %v", gw.gotPayload)
		}
		if gw.gotTimeout != 30*time.Second {
			t.Errorf("timeout = %s", gw.gotTimeout)
		}
		if !strings.Contains(reply.Text, "**✅ 作成しました**") {
			t.Errorf("reply = %q", reply.Text)
		}
		if !strings.Contains(reply.Text, "calendar.google.com") {
			t.Errorf("reply missing calendar link: %q", reply.Text)
		}
	})

	t.Run("upstream error becomes status text", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{
				Kind:        gateway.OutcomeUpstreamError,
				HTTPStatus:  500,
				BodyExcerpt: "Script error",
			},
		}
		uc := newUseCase(gw)

		reply, err := uc.CreateEvents(context.Background(), task.CreateEventsInput{Text: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "HTTP Error 500") {
			t.Errorf("reply = %q", reply.Text)
		}
		if !strings.Contains(reply.Text, "Script error") {
			t.Errorf("reply missing excerpt: %q", reply.Text)
		}
	})

	t.Run("timeout message is distinct", func(t *testing.T) {
		gw := &mockGateway{outcome: gateway.Outcome{Kind: gateway.OutcomeTimeout}}
		uc := newUseCase(gw)

		reply, _ := uc.CreateEvents(context.Background(), task.CreateEventsInput{Text: "x"})
		if !strings.Contains(reply.Text, "タイムアウト") {
			t.Errorf("reply = %q", reply.Text)
		}
		if strings.Contains(reply.Text, "HTTP Error") {
			t.Errorf("timeout reply should not mention a status: %q", reply.Text)
		}
	})

	t.Run("domain failure from envelope", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				resp := out.(*gateway.CreateResponse)
				resp.OK = false
				resp.Error = "パースできませんでした"
			},
		}
		uc := newUseCase(gw)

		reply, _ := uc.CreateEvents(context.Background(), task.CreateEventsInput{Text: "x"})
		if reply.Text != "エラー: パースできませんでした" {
			t.Errorf("reply = %q", reply.Text)
		}
	})
}

func TestGetSchedule(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				out.(*gateway.ScheduleResponse).OK = true
			},
		}
		uc := newUseCase(gw)

		reply, err := uc.GetSchedule(context.Background(), task.ScheduleInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gw.gotPayload["date"] != "今日" || gw.gotPayload["days"] != 1 {
			t.Errorf("payload = %v", gw.gotPayload)
		}
		if !strings.Contains(reply.Text, "予定はありません") {
			t.Errorf("reply = %q", reply.Text)
		}
	})

	t.Run("explicit range forwarded", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				resp := out.(*gateway.ScheduleResponse)
				resp.OK = true
				resp.Events = []model.CalendarEvent{
					{Title: "朝会", Start: "2025-11-01T09:00:00", End: "2025-11-01T09:15:00"},
				}
			},
		}
		uc := newUseCase(gw)

		reply, _ := uc.GetSchedule(context.Background(), task.ScheduleInput{Date: "明日", Days: 3})
		if gw.gotPayload["date"] != "明日" || gw.gotPayload["days"] != 3 {
			t.Errorf("payload = %v", gw.gotPayload)
		}
		if !strings.Contains(reply.Text, "• 朝会 `09:00-09:15`") {
			t.Errorf("reply = %q", reply.Text)
		}
	})
}

func TestWeeklyReport(t *testing.T) {
	gw := &mockGateway{
		outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
		fill: func(out any) {
			resp := out.(*gateway.ReportResponse)
			resp.OK = true
			resp.Report = model.WeeklyReport{Total: 12.5, ByPriority: map[string]float64{"A": 8}}
		},
	}
	uc := newUseCase(gw)

	reply, err := uc.WeeklyReport(context.Background(), task.ReportInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.gotPayload["period"] != "week" {
		t.Errorf("payload = %v", gw.gotPayload)
	}
	if !strings.Contains(reply.Text, "**総作業時間:** 12.5時間") {
		t.Errorf("reply = %q", reply.Text)
	}
}

func TestCompletion(t *testing.T) {
	t.Run("empty task rejected", func(t *testing.T) {
		uc := newUseCase(&mockGateway{})
		if _, err := uc.MarkComplete(context.Background(), task.CompletionInput{}); err != task.ErrEmptyTask {
			t.Errorf("err = %v, want ErrEmptyTask", err)
		}
	})

	t.Run("mark success uses gateway message", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				resp := out.(*gateway.CompletionResponse)
				resp.OK = true
				resp.Message = "「資料作成」を完了にしました"
			},
		}
		uc := newUseCase(gw)

		reply, _ := uc.MarkComplete(context.Background(), task.CompletionInput{Task: "資料"})
		if gw.gotMode != gateway.ModeMarkComplete {
			t.Errorf("mode = %q", gw.gotMode)
		}
		if reply.Text != "✅ 「資料作成」を完了にしました" {
			t.Errorf("reply = %q", reply.Text)
		}
	})

	t.Run("not found is a warning, not an error", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				out.(*gateway.CompletionResponse).OK = false
			},
		}
		uc := newUseCase(gw)

		reply, err := uc.MarkComplete(context.Background(), task.CompletionInput{Task: "ない"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Text != "⚠️ タスクが見つかりませんでした" {
			t.Errorf("reply = %q", reply.Text)
		}
	})

	t.Run("unmark uses its own mode and prefix", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				out.(*gateway.CompletionResponse).OK = true
			},
		}
		uc := newUseCase(gw)

		reply, _ := uc.UnmarkComplete(context.Background(), task.CompletionInput{Task: "資料"})
		if gw.gotMode != gateway.ModeUnmarkComplete {
			t.Errorf("mode = %q", gw.gotMode)
		}
		if reply.Text != "↩️ タスクの完了を取り消しました" {
			t.Errorf("reply = %q", reply.Text)
		}
	})
}

func TestProgress(t *testing.T) {
	t.Run("uses the short timeout", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				resp := out.(*gateway.ProgressResponse)
				resp.OK = true
				resp.Progress = model.ProgressSnapshot{
					Date: "2025-10-30", TotalTasks: 2, CompletedCount: 1, CompletionRate: 50,
					Completed: []model.CalendarEvent{{Title: "a", Start: "09:00", End: "10:00"}},
					Pending:   []model.CalendarEvent{{Title: "b", Start: "11:00", End: "12:00"}},
				}
			},
		}
		uc := newUseCase(gw)

		reply, err := uc.Progress(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gw.gotTimeout != 15*time.Second {
			t.Errorf("timeout = %s, want 15s", gw.gotTimeout)
		}
		if !strings.Contains(reply.Text, "**達成率:** 50% `█████░░░░░`") {
			t.Errorf("reply = %q", reply.Text)
		}
	})

	t.Run("envelope failure", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				resp := out.(*gateway.ProgressResponse)
				resp.OK = false
				resp.Error = "シートが見つかりません"
			},
		}
		uc := newUseCase(gw)

		reply, _ := uc.Progress(context.Background())
		if reply.Text != "❌ エラー: シートが見つかりません" {
			t.Errorf("reply = %q", reply.Text)
		}
	})
}

func TestFormatEvents(t *testing.T) {
	gw := &mockGateway{
		outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
		fill: func(out any) {
			resp := out.(*gateway.FormatResponse)
			resp.OK = true
			resp.Result = model.FormatResult{Skipped: 4}
		},
	}
	uc := newUseCase(gw)

	reply, err := uc.FormatEvents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.gotPayload["days_back"] != 30 || gw.gotPayload["days_forward"] != 30 {
		t.Errorf("payload = %v", gw.gotPayload)
	}
	if gw.gotTimeout != 20*time.Second {
		t.Errorf("timeout = %s, want 20s", gw.gotTimeout)
	}
	if !strings.Contains(reply.Text, "すべてのイベントは既にフォーマット済みです") {
		t.Errorf("reply = %q", reply.Text)
	}
}

func TestAnalyzeEvents(t *testing.T) {
	t.Run("renders summary", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				resp := out.(*gateway.AnalyzeResponse)
				resp.OK = true
				resp.Result = model.AnalyzeResult{
					Summary: model.AnalyzeSummary{NeedsConversion: 2},
				}
			},
		}
		uc := newUseCase(gw)

		reply, _ := uc.AnalyzeEvents(context.Background())
		if gw.gotTimeout != 15*time.Second {
			t.Errorf("timeout = %s, want 15s", gw.gotTimeout)
		}
		if !strings.Contains(reply.Text, "• 変換が必要: **2件**") {
			t.Errorf("reply = %q", reply.Text)
		}
	})

	t.Run("unusable payload degrades to manual guidance", func(t *testing.T) {
		gw := &mockGateway{
			outcome: gateway.Outcome{Kind: gateway.OutcomeSuccess},
			fill: func(out any) {
				out.(*gateway.AnalyzeResponse).OK = false
			},
		}
		uc := newUseCase(gw)

		reply, err := uc.AnalyzeEvents(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "📋 **手動確認手順:**") {
			t.Errorf("reply = %q", reply.Text)
		}
	})
}
