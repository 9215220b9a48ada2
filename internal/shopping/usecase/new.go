package usecase

import (
	"time"

	"bnapp/internal/shopping/repository"
	"bnapp/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	now  func() time.Time
}

// New creates a new shopping UseCase.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo, now: time.Now}
}
