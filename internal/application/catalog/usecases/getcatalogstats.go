package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/catalog/dto"
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

// GetCatalogStatsUseCase computes the headline numbers for the catalog
// dashboard cards.
type GetCatalogStatsUseCase struct {
	apiRepo catalog.APIRepository
	logger  logger.Interface
}

func NewGetCatalogStatsUseCase(apiRepo catalog.APIRepository, logger logger.Interface) *GetCatalogStatsUseCase {
	return &GetCatalogStatsUseCase{
		apiRepo: apiRepo,
		logger:  logger,
	}
}

func (uc *GetCatalogStatsUseCase) Execute(ctx context.Context) (*dto.CatalogStatsDTO, error) {
	apis, err := uc.apiRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list apis for stats", "error", err)
		return nil, fmt.Errorf("failed to list apis: %w", err)
	}

	stats := &dto.CatalogStatsDTO{TotalAPIs: len(apis)}
	for _, api := range apis {
		if api.IsSellable() {
			stats.ActiveAPIs++
		}
	}

	return stats, nil
}
