package rateplan

import "context"

// PlanRepository persists rate plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, planID uint) error
}

// EntitlementRepository persists the per-plan API entitlement rows.
type EntitlementRepository interface {
	// ReplaceForPlan swaps the full entitlement set of a plan atomically
	// with the surrounding transaction.
	ReplaceForPlan(ctx context.Context, planID uint, entitlements []*Entitlement) error
	ListByPlanID(ctx context.Context, planID uint) ([]*Entitlement, error)
	ListAll(ctx context.Context) ([]*Entitlement, error)
	DeleteByPlanID(ctx context.Context, planID uint) error
}
