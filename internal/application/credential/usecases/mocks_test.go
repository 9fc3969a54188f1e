package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rasu25115/pickme/internal/domain/credential"
)

type mockAPIKeyRepository struct {
	mock.Mock
}

func (m *mockAPIKeyRepository) Create(ctx context.Context, key *credential.APIKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockAPIKeyRepository) GetBySID(ctx context.Context, sid string) (*credential.APIKey, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.APIKey), args.Error(1)
}

func (m *mockAPIKeyRepository) List(ctx context.Context) ([]*credential.APIKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credential.APIKey), args.Error(1)
}

func (m *mockAPIKeyRepository) Update(ctx context.Context, key *credential.APIKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockAPIKeyRepository) Delete(ctx context.Context, keyID uint) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
