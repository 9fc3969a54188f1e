package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/infrastructure/persistence/models"
	"github.com/rasu25115/pickme/internal/shared/db"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type APIRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAPIRepository(db *gorm.DB, logger logger.Interface) catalog.APIRepository {
	return &APIRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *APIRepositoryImpl) Create(ctx context.Context, api *catalog.API) error {
	model := r.toModel(api)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create api", "error", err, "name", api.Name())
		return fmt.Errorf("failed to create api: %w", err)
	}

	return api.SetID(model.ID)
}

func (r *APIRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.API, error) {
	var model models.APIModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrAPINotFound
		}
		r.logger.Errorw("failed to get api by sid", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get api: %w", err)
	}

	return r.toEntity(&model)
}

func (r *APIRepositoryImpl) List(ctx context.Context) ([]*catalog.API, error) {
	var apiModels []*models.APIModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("created_at ASC").Find(&apiModels).Error; err != nil {
		r.logger.Errorw("failed to list apis", "error", err)
		return nil, fmt.Errorf("failed to list apis: %w", err)
	}

	apis := make([]*catalog.API, 0, len(apiModels))
	for _, model := range apiModels {
		api, err := r.toEntity(model)
		if err != nil {
			r.logger.Warnw("skipping invalid api row", "error", err, "api_id", model.ID)
			continue
		}
		apis = append(apis, api)
	}
	return apis, nil
}

func (r *APIRepositoryImpl) Update(ctx context.Context, api *catalog.API) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.APIModel{}).
		Where("id = ?", api.ID()).
		Updates(map[string]interface{}{
			"name":                  api.Name(),
			"type":                  api.Type().String(),
			"global_buy_price":      api.GlobalBuyPrice(),
			"global_sell_price":     api.GlobalSellPrice(),
			"default_credit_charge": api.DefaultCreditCharge(),
			"description":           api.Description(),
			"updated_at":            api.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update api", "error", result.Error, "api_id", api.ID())
		return fmt.Errorf("failed to update api: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrAPINotFound
	}

	return nil
}

func (r *APIRepositoryImpl) Delete(ctx context.Context, apiID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.APIModel{}, apiID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete api", "error", result.Error, "api_id", apiID)
		return fmt.Errorf("failed to delete api: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrAPINotFound
	}

	return nil
}

func (r *APIRepositoryImpl) toModel(api *catalog.API) *models.APIModel {
	return &models.APIModel{
		ID:                  api.ID(),
		SID:                 api.SID(),
		Name:                api.Name(),
		Type:                api.Type().String(),
		GlobalBuyPrice:      api.GlobalBuyPrice(),
		GlobalSellPrice:     api.GlobalSellPrice(),
		DefaultCreditCharge: api.DefaultCreditCharge(),
		Description:         api.Description(),
		CreatedAt:           api.CreatedAt(),
		UpdatedAt:           api.UpdatedAt(),
	}
}

func (r *APIRepositoryImpl) toEntity(model *models.APIModel) (*catalog.API, error) {
	return catalog.ReconstructAPI(
		model.ID,
		model.SID,
		model.Name,
		model.Type,
		model.GlobalBuyPrice,
		model.GlobalSellPrice,
		model.DefaultCreditCharge,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
