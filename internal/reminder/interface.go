package reminder

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ScanDue notifies the owners of items whose reminder falls in the scan window ending at now.
	ScanDue(ctx context.Context, now time.Time) (int, error)
	// SendDigest sends each participant the free slots of now's day.
	SendDigest(ctx context.Context, now time.Time) (int, error)
}
