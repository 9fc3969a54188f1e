package credential

import "context"

// APIKeyRepository persists provider credentials.
type APIKeyRepository interface {
	Create(ctx context.Context, key *APIKey) error
	GetBySID(ctx context.Context, sid string) (*APIKey, error)
	List(ctx context.Context) ([]*APIKey, error)
	Update(ctx context.Context, key *APIKey) error
	Delete(ctx context.Context, keyID uint) error
}
