package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/infrastructure/persistence/models"
	"github.com/rasu25115/pickme/internal/shared/db"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type RatePlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRatePlanRepository(db *gorm.DB, logger logger.Interface) rateplan.PlanRepository {
	return &RatePlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *RatePlanRepositoryImpl) Create(ctx context.Context, plan *rateplan.Plan) error {
	model := r.toModel(plan)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create rate plan", "error", err, "plan_name", plan.PlanName())
		return fmt.Errorf("failed to create rate plan: %w", err)
	}

	return plan.SetID(model.ID)
}

func (r *RatePlanRepositoryImpl) GetBySID(ctx context.Context, sid string) (*rateplan.Plan, error) {
	var model models.RatePlanModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rateplan.ErrPlanNotFound
		}
		r.logger.Errorw("failed to get rate plan by sid", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get rate plan: %w", err)
	}

	return r.toEntity(&model)
}

func (r *RatePlanRepositoryImpl) List(ctx context.Context) ([]*rateplan.Plan, error) {
	var planModels []*models.RatePlanModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("created_at ASC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list rate plans", "error", err)
		return nil, fmt.Errorf("failed to list rate plans: %w", err)
	}

	plans := make([]*rateplan.Plan, 0, len(planModels))
	for _, model := range planModels {
		plan, err := r.toEntity(model)
		if err != nil {
			r.logger.Warnw("skipping invalid rate plan row", "error", err, "plan_id", model.ID)
			continue
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *RatePlanRepositoryImpl) Update(ctx context.Context, plan *rateplan.Plan) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.RatePlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"plan_name":        plan.PlanName(),
			"user_type":        plan.UserType().String(),
			"monthly_fee":      plan.MonthlyFee(),
			"default_credits":  plan.DefaultCredits(),
			"renewal_required": plan.RenewalRequired(),
			"topup_allowed":    plan.TopupAllowed(),
			"status":           string(plan.Status()),
			"updated_at":       plan.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update rate plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update rate plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rateplan.ErrPlanNotFound
	}

	return nil
}

func (r *RatePlanRepositoryImpl) Delete(ctx context.Context, planID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RatePlanModel{}, planID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete rate plan", "error", result.Error, "plan_id", planID)
		return fmt.Errorf("failed to delete rate plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rateplan.ErrPlanNotFound
	}

	return nil
}

func (r *RatePlanRepositoryImpl) toModel(plan *rateplan.Plan) *models.RatePlanModel {
	return &models.RatePlanModel{
		ID:              plan.ID(),
		SID:             plan.SID(),
		PlanName:        plan.PlanName(),
		UserType:        plan.UserType().String(),
		MonthlyFee:      plan.MonthlyFee(),
		DefaultCredits:  plan.DefaultCredits(),
		RenewalRequired: plan.RenewalRequired(),
		TopupAllowed:    plan.TopupAllowed(),
		Status:          string(plan.Status()),
		CreatedAt:       plan.CreatedAt(),
		UpdatedAt:       plan.UpdatedAt(),
	}
}

func (r *RatePlanRepositoryImpl) toEntity(model *models.RatePlanModel) (*rateplan.Plan, error) {
	return rateplan.ReconstructPlan(
		model.ID,
		model.SID,
		model.PlanName,
		model.UserType,
		model.MonthlyFee,
		model.DefaultCredits,
		model.RenewalRequired,
		model.TopupAllowed,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
