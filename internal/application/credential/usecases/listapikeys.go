package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/credential/dto"
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type ListAPIKeysCommand struct {
	// Search filters by case-insensitive substring over name or provider.
	// Empty returns everything.
	Search string
}

type ListAPIKeysUseCase struct {
	keyRepo  credential.APIKeyRepository
	usageCap uint64
	logger   logger.Interface
}

func NewListAPIKeysUseCase(keyRepo credential.APIKeyRepository, usageCap uint64, logger logger.Interface) *ListAPIKeysUseCase {
	return &ListAPIKeysUseCase{
		keyRepo:  keyRepo,
		usageCap: usageCap,
		logger:   logger,
	}
}

func (uc *ListAPIKeysUseCase) Execute(ctx context.Context, cmd ListAPIKeysCommand) ([]*dto.APIKeyDTO, error) {
	keys, err := uc.keyRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list api keys", "error", err)
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	if cmd.Search != "" {
		filtered := make([]*credential.APIKey, 0, len(keys))
		for _, key := range keys {
			if key.MatchesSearch(cmd.Search) {
				filtered = append(filtered, key)
			}
		}
		keys = filtered
	}

	return dto.ToAPIKeyDTOs(keys, uc.usageCap), nil
}
