package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/infrastructure/persistence/models"
	"github.com/rasu25115/pickme/internal/shared/db"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type APIKeyRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAPIKeyRepository(db *gorm.DB, logger logger.Interface) credential.APIKeyRepository {
	return &APIKeyRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *APIKeyRepositoryImpl) Create(ctx context.Context, key *credential.APIKey) error {
	model := r.toModel(key)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create api key", "error", err, "name", key.Name())
		return fmt.Errorf("failed to create api key: %w", err)
	}

	return key.SetID(model.ID)
}

func (r *APIKeyRepositoryImpl) GetBySID(ctx context.Context, sid string) (*credential.APIKey, error) {
	var model models.APIKeyModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, credential.ErrKeyNotFound
		}
		r.logger.Errorw("failed to get api key by sid", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}

	return r.toEntity(&model)
}

func (r *APIKeyRepositoryImpl) List(ctx context.Context) ([]*credential.APIKey, error) {
	var keyModels []*models.APIKeyModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("created_at ASC").Find(&keyModels).Error; err != nil {
		r.logger.Errorw("failed to list api keys", "error", err)
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	keys := make([]*credential.APIKey, 0, len(keyModels))
	for _, model := range keyModels {
		key, err := r.toEntity(model)
		if err != nil {
			r.logger.Warnw("skipping invalid api key row", "error", err, "key_id", model.ID)
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *APIKeyRepositoryImpl) Update(ctx context.Context, key *credential.APIKey) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.APIKeyModel{}).
		Where("id = ?", key.ID()).
		Updates(map[string]interface{}{
			"name":         key.Name(),
			"provider":     key.Provider().String(),
			"secret":       key.Secret(),
			"status":       string(key.Status()),
			"usage_count":  key.UsageCount(),
			"last_used_at": key.LastUsedAt(),
			"updated_at":   key.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update api key", "error", result.Error, "key_id", key.ID())
		return fmt.Errorf("failed to update api key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return credential.ErrKeyNotFound
	}

	return nil
}

func (r *APIKeyRepositoryImpl) Delete(ctx context.Context, keyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.APIKeyModel{}, keyID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete api key", "error", result.Error, "key_id", keyID)
		return fmt.Errorf("failed to delete api key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return credential.ErrKeyNotFound
	}

	return nil
}

func (r *APIKeyRepositoryImpl) toModel(key *credential.APIKey) *models.APIKeyModel {
	return &models.APIKeyModel{
		ID:         key.ID(),
		SID:        key.SID(),
		Name:       key.Name(),
		Provider:   key.Provider().String(),
		Secret:     key.Secret(),
		Status:     string(key.Status()),
		UsageCount: key.UsageCount(),
		LastUsedAt: key.LastUsedAt(),
		CreatedAt:  key.CreatedAt(),
		UpdatedAt:  key.UpdatedAt(),
	}
}

func (r *APIKeyRepositoryImpl) toEntity(model *models.APIKeyModel) (*credential.APIKey, error) {
	return credential.ReconstructAPIKey(
		model.ID,
		model.SID,
		model.Name,
		model.Provider,
		model.Secret,
		model.Status,
		model.UsageCount,
		model.LastUsedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
