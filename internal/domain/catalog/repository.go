package catalog

import "context"

// APIRepository persists catalog entries.
type APIRepository interface {
	Create(ctx context.Context, api *API) error
	GetBySID(ctx context.Context, sid string) (*API, error)
	List(ctx context.Context) ([]*API, error)
	Update(ctx context.Context, api *API) error
	Delete(ctx context.Context, apiID uint) error
}
