package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/credential/dto"
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

// GetKeyStatsUseCase computes the headline numbers for the provider key
// dashboard cards.
type GetKeyStatsUseCase struct {
	keyRepo credential.APIKeyRepository
	logger  logger.Interface
}

func NewGetKeyStatsUseCase(keyRepo credential.APIKeyRepository, logger logger.Interface) *GetKeyStatsUseCase {
	return &GetKeyStatsUseCase{
		keyRepo: keyRepo,
		logger:  logger,
	}
}

func (uc *GetKeyStatsUseCase) Execute(ctx context.Context) (*dto.KeyStatsDTO, error) {
	keys, err := uc.keyRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list api keys for stats", "error", err)
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	stats := &dto.KeyStatsDTO{TotalKeys: len(keys)}
	for _, key := range keys {
		if key.IsActive() {
			stats.ActiveKeys++
		}
		stats.TotalUsage += key.UsageCount()
	}

	return stats, nil
}
