package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/catalog/dto"
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type ListAPIsCommand struct {
	// Search filters by case-insensitive substring over name or
	// description. Empty returns everything.
	Search string
}

type ListAPIsUseCase struct {
	apiRepo catalog.APIRepository
	logger  logger.Interface
}

func NewListAPIsUseCase(apiRepo catalog.APIRepository, logger logger.Interface) *ListAPIsUseCase {
	return &ListAPIsUseCase{
		apiRepo: apiRepo,
		logger:  logger,
	}
}

func (uc *ListAPIsUseCase) Execute(ctx context.Context, cmd ListAPIsCommand) ([]*dto.APIDTO, error) {
	apis, err := uc.apiRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list apis", "error", err)
		return nil, fmt.Errorf("failed to list apis: %w", err)
	}

	if cmd.Search != "" {
		filtered := make([]*catalog.API, 0, len(apis))
		for _, api := range apis {
			if api.MatchesSearch(cmd.Search) {
				filtered = append(filtered, api)
			}
		}
		apis = filtered
	}

	return dto.ToAPIDTOs(apis), nil
}
