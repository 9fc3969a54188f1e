package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
)

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) Create(ctx context.Context, plan *rateplan.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepository) GetBySID(ctx context.Context, sid string) (*rateplan.Plan, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rateplan.Plan), args.Error(1)
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*rateplan.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rateplan.Plan), args.Error(1)
}

func (m *mockPlanRepository) Update(ctx context.Context, plan *rateplan.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepository) Delete(ctx context.Context, planID uint) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

type mockEntitlementRepository struct {
	mock.Mock
}

func (m *mockEntitlementRepository) ReplaceForPlan(ctx context.Context, planID uint, entitlements []*rateplan.Entitlement) error {
	args := m.Called(ctx, planID, entitlements)
	return args.Error(0)
}

func (m *mockEntitlementRepository) ListByPlanID(ctx context.Context, planID uint) ([]*rateplan.Entitlement, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rateplan.Entitlement), args.Error(1)
}

func (m *mockEntitlementRepository) ListAll(ctx context.Context) ([]*rateplan.Entitlement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rateplan.Entitlement), args.Error(1)
}

func (m *mockEntitlementRepository) DeleteByPlanID(ctx context.Context, planID uint) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

type mockAPIRepository struct {
	mock.Mock
}

func (m *mockAPIRepository) Create(ctx context.Context, api *catalog.API) error {
	args := m.Called(ctx, api)
	return args.Error(0)
}

func (m *mockAPIRepository) GetBySID(ctx context.Context, sid string) (*catalog.API, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.API), args.Error(1)
}

func (m *mockAPIRepository) List(ctx context.Context) ([]*catalog.API, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.API), args.Error(1)
}

func (m *mockAPIRepository) Update(ctx context.Context, api *catalog.API) error {
	args := m.Called(ctx, api)
	return args.Error(0)
}

func (m *mockAPIRepository) Delete(ctx context.Context, apiID uint) error {
	args := m.Called(ctx, apiID)
	return args.Error(0)
}

// fakeTxManager runs the callback directly so use case logic can be tested
// without a database.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
