package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bnapp/internal/dayplan"
	"bnapp/internal/model"
	"bnapp/pkg/notify"
)

const (
	subjectReminder = "⏰ תזכורת"
	subjectDigest   = "☀️ בוקר טוב"
	msgDigestNoGaps = "אין היום חלונות פנויים של חצי שעה ומעלה."
	msgDigestHeader = "חלונות פנויים היום:"
)

// ScanDue sends the reminders whose instant lies in (now-window, now].
// now is truncated to the minute so consecutive scans tile the day.
// Deliveries are tracked per recipient; failed ones are resent on later
// scans until they succeed or RetryTTL passes.
func (uc *implUseCase) ScanDue(ctx context.Context, now time.Time) (int, error) {
	now = now.In(uc.dates.Location()).Truncate(time.Minute)
	from := now.Add(-uc.window)

	sent, errs := uc.resendFailed(ctx)

	day, err := uc.events.ListDay(ctx, model.Scope{}, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScanDue ListDay: %v", err)
		return sent, errors.Join(append(errs, err)...)
	}

	for _, it := range day.Items {
		at, ok := remindAt(it, now)
		if !ok || !at.After(from) || at.After(now) {
			continue
		}

		for _, r := range it.Owner.Recipients() {
			key := fmt.Sprintf("%s/%s/%s/%s", day.DateKey, it.ID, at.Format("15:04"), r)
			if uc.sent.Contains(key) || uc.retry.Contains(key) {
				continue
			}

			msg := notify.Message{Recipient: string(r), Subject: subjectReminder, Text: reminderText(it)}
			if err := uc.notifier.Notify(ctx, msg); err != nil {
				uc.l.Warnf(ctx, "uc.ScanDue notify %s: %v", key, err)
				errs = append(errs, err)
				uc.retry.Add(key, msg)
				continue
			}
			uc.sent.Add(key, struct{}{})
			sent++
		}
	}
	return sent, errors.Join(errs...)
}

// resendFailed retries the pending deliveries, oldest first.
func (uc *implUseCase) resendFailed(ctx context.Context) (int, []error) {
	var (
		sent int
		errs []error
	)
	for _, key := range uc.retry.Keys() {
		msg, ok := uc.retry.Peek(key)
		if !ok {
			continue
		}
		if err := uc.notifier.Notify(ctx, msg); err != nil {
			uc.l.Warnf(ctx, "uc.ScanDue retry %s: %v", key, err)
			errs = append(errs, err)
			continue
		}
		uc.retry.Remove(key)
		uc.sent.Add(key, struct{}{})
		sent++
	}
	return sent, errs
}

// SendDigest sends every participant their free slots for today.
func (uc *implUseCase) SendDigest(ctx context.Context, now time.Time) (int, error) {
	var (
		sent int
		errs []error
	)
	for _, p := range model.Participants() {
		load, err := uc.events.DailyLoad(ctx, model.Scope{Viewer: p}, now)
		if err != nil {
			uc.l.Errorf(ctx, "uc.SendDigest DailyLoad %s: %v", p, err)
			errs = append(errs, err)
			continue
		}

		n, err := uc.notifyOwner(ctx, p, subjectDigest, digestText(load.Level, load.FreeRanges))
		sent += n
		if err != nil {
			uc.l.Warnf(ctx, "uc.SendDigest notify %s: %v", p, err)
			errs = append(errs, err)
		}
	}
	return sent, errors.Join(errs...)
}

// notifyOwner sends to every recipient of owner and counts the deliveries.
func (uc *implUseCase) notifyOwner(ctx context.Context, owner model.Owner, subject, text string) (int, error) {
	var (
		sent int
		errs []error
	)
	for _, r := range owner.Recipients() {
		err := uc.notifier.Notify(ctx, notify.Message{Recipient: string(r), Subject: subject, Text: text})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}

// remindAt is the reminder instant of a timed item on the day of now.
func remindAt(it model.Item, now time.Time) (time.Time, bool) {
	if it.ReminderMinutes == nil || *it.ReminderMinutes <= 0 || it.StartTime == "" {
		return time.Time{}, false
	}
	c, err := dayplan.ParseClock(it.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), c.Hour, c.Minute, 0, 0, now.Location())
	return start.Add(-time.Duration(*it.ReminderMinutes) * time.Minute), true
}

func reminderText(it model.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s בשעה %s", it.Title, it.StartTime)
	if it.Address != "" {
		fmt.Fprintf(&b, "\n📍 %s\n%s", it.Address, model.WazeURL(it.Address))
	}
	return b.String()
}

func digestText(level dayplan.Level, free []string) string {
	if len(free) == 0 {
		return level.Label() + "\n" + msgDigestNoGaps
	}
	return level.Label() + "\n" + msgDigestHeader + "\n• " + strings.Join(free, "\n• ")
}
