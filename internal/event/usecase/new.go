package usecase

import (
	"context"
	"time"

	"bnapp/internal/event/repository"
	"bnapp/pkg/datemath"
	"bnapp/pkg/gcalendar"
	"bnapp/pkg/log"
)

// Mirror copies timed items to an external calendar. *gcalendar.Client satisfies it.
type Mirror interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	dates  *datemath.Parser
	mirror Mirror
	now    func() time.Time
}

// New creates a new event UseCase. mirror may be nil.
func New(l log.Logger, repo repository.Repository, dates *datemath.Parser, mirror Mirror) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		dates:  dates,
		mirror: mirror,
		now:    time.Now,
	}
}
