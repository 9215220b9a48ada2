package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"bnapp/internal/dayplan"
	"bnapp/internal/event"
	"bnapp/internal/gihari"
	repo "bnapp/internal/gihari/repository"
	"bnapp/internal/model"
	"bnapp/pkg/datemath"
)

// Command classifies text and runs the matching action. The command is
// logged whatever its outcome.
func (uc *implUseCase) Command(ctx context.Context, sc model.Scope, input gihari.CommandInput) (gihari.Reply, error) {
	raw := strings.TrimSpace(input.Text)
	if raw == "" {
		return gihari.Reply{}, gihari.ErrEmptyCommand
	}

	text := gihari.Normalize(raw)
	intent := gihari.Classify(text)

	var (
		reply gihari.Reply
		err   error
	)
	switch intent {
	case gihari.IntentAddEvent:
		reply, err = uc.addEvent(ctx, sc, text)
	case gihari.IntentFreeTime:
		reply, err = uc.freeTime(ctx, sc)
	case gihari.IntentSuggest:
		reply, err = uc.suggest(ctx, sc)
	default:
		reply = gihari.Reply{Text: msgNotUnderstood}
	}
	reply.Intent = intent

	uc.logCommand(ctx, sc, input.Source, raw, reply, err)
	if err != nil {
		return gihari.Reply{}, err
	}
	return uc.finish(reply, input.ReplyOptions), nil
}

func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, opt gihari.ReplyOptions) (gihari.Reply, error) {
	reply, err := uc.suggest(ctx, sc)
	if err != nil {
		return gihari.Reply{}, err
	}
	reply.Intent = gihari.IntentSuggest
	return uc.finish(reply, opt), nil
}

func (uc *implUseCase) FreeTime(ctx context.Context, sc model.Scope, opt gihari.ReplyOptions) (gihari.Reply, error) {
	reply, err := uc.freeTime(ctx, sc)
	if err != nil {
		return gihari.Reply{}, err
	}
	reply.Intent = gihari.IntentFreeTime
	return uc.finish(reply, opt), nil
}

func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (gihari.SummaryOutput, error) {
	load, err := uc.events.DailyLoad(ctx, sc, uc.today())
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary DailyLoad: %v", err)
		return gihari.SummaryOutput{}, err
	}
	busy := load.Summary.TotalBusyMinutes
	return gihari.SummaryOutput{
		DateKey:     load.DateKey,
		BusyMinutes: busy,
		BusyHours:   int(math.Round(float64(busy) / 60)),
		Level:       dayplan.LoadLevel(busy),
		FreeSlots:   len(load.Summary.FreeSlots),
	}, nil
}

// addEvent creates a two-hour event for the viewer from "תוסיף לי ..." text.
func (uc *implUseCase) addEvent(ctx context.Context, sc model.Scope, text string) (gihari.Reply, error) {
	date := uc.dates.CommandDate(text, uc.now())

	hour, minute, ok := datemath.CommandHour(text)
	if !ok {
		hour, minute = defaultEventHour, 0
	}
	endHour := min(hour+eventLengthHours, lastEventHour)
	start := dayplan.Clock{Hour: hour, Minute: minute}
	end := dayplan.Clock{Hour: endHour, Minute: minute}
	duration := (endHour - hour) * 60

	title, address := gihari.SplitTitleAddress(text)
	item, err := uc.events.Create(ctx, sc, event.CreateInput{
		Type:      model.ItemTypeEvent,
		Owner:     sc.Viewer,
		Title:     gihari.StripTags(title),
		DateKey:   uc.dates.DateKey(date),
		StartTime: start.String(),
		EndTime:   end.String(),
		Duration:  &duration,
		Address:   gihari.StripTags(address),
		Recurring: model.RecurrenceNone,
		Urgency:   model.UrgencyNone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.addEvent Create: %v", err)
		return gihari.Reply{}, err
	}

	return gihari.Reply{
		Text: fmt.Sprintf(msgEventAdded, item.Title, item.DateKey, item.StartTime),
		Item: &item,
	}, nil
}

func (uc *implUseCase) freeTime(ctx context.Context, sc model.Scope) (gihari.Reply, error) {
	load, err := uc.events.DailyLoad(ctx, sc, uc.today())
	if err != nil {
		uc.l.Errorf(ctx, "uc.freeTime DailyLoad: %v", err)
		return gihari.Reply{}, err
	}
	if len(load.FreeRanges) == 0 {
		return gihari.Reply{Text: msgNoGaps}, nil
	}

	var b strings.Builder
	b.WriteString(msgFreeHeader)
	for _, r := range load.FreeRanges {
		b.WriteString("\n• ")
		b.WriteString(r)
	}
	return gihari.Reply{Text: b.String(), FreeRanges: load.FreeRanges}, nil
}

func (uc *implUseCase) suggest(ctx context.Context, sc model.Scope) (gihari.Reply, error) {
	out, err := uc.events.SuggestNow(ctx, sc, uc.today())
	if err != nil {
		uc.l.Errorf(ctx, "uc.suggest SuggestNow: %v", err)
		return gihari.Reply{}, err
	}
	if !out.Found {
		return gihari.Reply{Text: msgNoTasks}, nil
	}
	top := out.Top
	return gihari.Reply{
		Text: fmt.Sprintf(msgSuggest, top.Title, top.Urgency.Label()),
		Item: &top,
	}, nil
}

// finish strips markup and adds the humor line.
func (uc *implUseCase) finish(r gihari.Reply, opt gihari.ReplyOptions) gihari.Reply {
	r.Text = gihari.StripTags(r.Text)
	if uc.humor && !opt.NoHumor {
		r.Humor = jokes[uc.pick(len(jokes))]
	}
	return r
}

func (uc *implUseCase) logCommand(ctx context.Context, sc model.Scope, source gihari.Source, text string, reply gihari.Reply, cmdErr error) {
	if uc.logs == nil {
		return
	}
	replyText := reply.Text
	if cmdErr != nil {
		replyText = "error: " + cmdErr.Error()
	}
	err := uc.logs.AppendLog(ctx, repo.LogOptions{
		At:     uc.now(),
		Owner:  sc.Viewer,
		Source: string(source),
		Text:   text,
		Intent: string(reply.Intent),
		Reply:  replyText,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.logCommand AppendLog: %v", err)
	}
}

func (uc *implUseCase) today() time.Time {
	return uc.dates.StartOfDay(uc.now())
}
