package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/infrastructure/persistence/models"
	"github.com/rasu25115/pickme/internal/shared/db"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type PlanAPIRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanAPIRepository(db *gorm.DB, logger logger.Interface) rateplan.EntitlementRepository {
	return &PlanAPIRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// ReplaceForPlan deletes the plan's current entitlement rows and inserts the
// new set. Callers run this inside a transaction so a failed insert rolls
// the delete back.
func (r *PlanAPIRepositoryImpl) ReplaceForPlan(ctx context.Context, planID uint, entitlements []*rateplan.Entitlement) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("plan_id = ?", planID).Delete(&models.PlanAPIModel{}).Error; err != nil {
		r.logger.Errorw("failed to clear plan entitlements", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to clear plan entitlements: %w", err)
	}

	if len(entitlements) == 0 {
		return nil
	}

	rows := make([]*models.PlanAPIModel, 0, len(entitlements))
	for _, ent := range entitlements {
		rows = append(rows, r.toModel(ent))
	}
	if err := tx.Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to insert plan entitlements", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to insert plan entitlements: %w", err)
	}

	for i, ent := range entitlements {
		if ent.ID() == 0 {
			if err := ent.SetID(rows[i].ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *PlanAPIRepositoryImpl) ListByPlanID(ctx context.Context, planID uint) ([]*rateplan.Entitlement, error) {
	var rows []*models.PlanAPIModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("plan_id = ?", planID).Order("id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list plan entitlements", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to list plan entitlements: %w", err)
	}

	return r.toEntities(rows)
}

func (r *PlanAPIRepositoryImpl) ListAll(ctx context.Context) ([]*rateplan.Entitlement, error) {
	var rows []*models.PlanAPIModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list entitlements", "error", err)
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	return r.toEntities(rows)
}

func (r *PlanAPIRepositoryImpl) DeleteByPlanID(ctx context.Context, planID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("plan_id = ?", planID).Delete(&models.PlanAPIModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete plan entitlements", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan entitlements: %w", err)
	}
	return nil
}

func (r *PlanAPIRepositoryImpl) toModel(ent *rateplan.Entitlement) *models.PlanAPIModel {
	return &models.PlanAPIModel{
		ID:         ent.ID(),
		PlanID:     ent.PlanID(),
		APISID:     ent.APISID(),
		Enabled:    ent.Enabled(),
		CreditCost: ent.CreditCost(),
		BuyPrice:   ent.BuyPrice(),
		SellPrice:  ent.SellPrice(),
		CreatedAt:  ent.CreatedAt(),
		UpdatedAt:  ent.UpdatedAt(),
	}
}

func (r *PlanAPIRepositoryImpl) toEntities(rows []*models.PlanAPIModel) ([]*rateplan.Entitlement, error) {
	entitlements := make([]*rateplan.Entitlement, 0, len(rows))
	for _, row := range rows {
		ent, err := rateplan.ReconstructEntitlement(
			row.ID,
			row.PlanID,
			row.APISID,
			row.Enabled,
			row.CreditCost,
			row.BuyPrice,
			row.SellPrice,
			row.CreatedAt,
			row.UpdatedAt,
		)
		if err != nil {
			r.logger.Warnw("skipping invalid entitlement row", "error", err, "entitlement_id", row.ID)
			continue
		}
		entitlements = append(entitlements, ent)
	}
	return entitlements, nil
}
