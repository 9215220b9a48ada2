package shopping

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Add(ctx context.Context, input AddInput) (Item, error)
	List(ctx context.Context, list string) ([]Item, error)
	Toggle(ctx context.Context, list, id string) (Item, error)
	Delete(ctx context.Context, list, id string) error
}
