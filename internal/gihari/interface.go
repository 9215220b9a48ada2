package gihari

import (
	"context"

	"bnapp/internal/model"
)

// UseCase is the rule-based assistant. Every method answers for the viewer's today.
type UseCase interface {
	Command(ctx context.Context, sc model.Scope, input CommandInput) (Reply, error)
	Summary(ctx context.Context, sc model.Scope) (SummaryOutput, error)
	Suggest(ctx context.Context, sc model.Scope, opt ReplyOptions) (Reply, error)
	FreeTime(ctx context.Context, sc model.Scope, opt ReplyOptions) (Reply, error)
}
