package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"discord-calendar-bot/internal/task"
	pkgLog "discord-calendar-bot/pkg/log"
)

// Fire times, fixed wall-clock in the report timezone.
const (
	cronAfternoon = "0 13 * * *"
	cronEvening   = "0 20 * * *"
)

// fireTimeout bounds one report run (gateway call + broadcast).
const fireTimeout = time.Minute

// Broadcaster is the slice of the Discord client the scheduler needs.
type Broadcaster interface {
	CreateMessage(ctx context.Context, channelID, content string) error
}

// Scheduler is the process-wide recurring progress report job. It fires at
// 13:00 and 20:00 report-timezone time, runs the same pipeline as the
// /progress command, and broadcasts the result to the configured channel.
// There is exactly one instance for the process lifetime and Start is
// idempotent.
type Scheduler struct {
	l         pkgLog.Logger
	uc        task.UseCase
	bot       Broadcaster
	channelID string
	loc       *time.Location
	cron      *cron.Cron
	startOnce sync.Once
}

// New creates the progress report scheduler. channelID may be empty, in
// which case every firing is a logged no-op.
func New(l pkgLog.Logger, uc task.UseCase, bot Broadcaster, channelID string) *Scheduler {
	loc := reportLocation()
	return &Scheduler{
		l:         l,
		uc:        uc,
		bot:       bot,
		channelID: channelID,
		loc:       loc,
		cron:      cron.New(cron.WithLocation(loc)),
	}
}

// reportLocation resolves the fixed report timezone. JST has no DST, so
// the fixed-offset fallback is equivalent when tzdata is unavailable.
func reportLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// Start registers the fire times and starts the cron loop. Calling Start
// again is a no-op.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		ctx := context.Background()
		for _, spec := range []string{cronAfternoon, cronEvening} {
			if _, err := s.cron.AddFunc(spec, s.fire); err != nil {
				s.l.Errorf(ctx, "scheduler: failed to register %q: %v", spec, err)
				return
			}
		}
		s.cron.Start()
		s.l.Infof(ctx, "scheduler: progress reports scheduled at 13:00 and 20:00 (%s)", s.loc)
	})
}

// Stop halts the cron loop. Already-running fires are left to finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// fire runs one scheduled report. Nothing escapes: an unconfigured
// channel is a logged no-op, a pipeline failure becomes a best-effort
// error notice, and a broadcast failure is swallowed — an unattended job
// has no one to notify synchronously.
func (s *Scheduler) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "scheduler: panic in fire: %v", r)
		}
	}()

	if s.channelID == "" {
		s.l.Warn(ctx, "scheduler: broadcast channel not configured, skipping report")
		return
	}

	header := time.Now().In(s.loc).Format("15:04")

	var text string
	reply, err := s.uc.Progress(ctx)
	if err != nil {
		s.l.Errorf(ctx, "scheduler: progress pipeline failed: %v", err)
		text = "⚠️ 自動進捗レポート送信エラーが発生しました。"
	} else {
		text = "🕐 **" + header + " 自動進捗レポート**\n" + reply.Text
	}

	if err := s.bot.CreateMessage(ctx, s.channelID, text); err != nil {
		s.l.Errorf(ctx, "scheduler: broadcast to channel %s failed: %v", s.channelID, err)
		return
	}
	s.l.Infof(ctx, "scheduler: progress report sent to channel %s", s.channelID)
}
