package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/catalog/dto"
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type GetAPICommand struct {
	APISID string
}

type GetAPIUseCase struct {
	apiRepo catalog.APIRepository
	logger  logger.Interface
}

func NewGetAPIUseCase(apiRepo catalog.APIRepository, logger logger.Interface) *GetAPIUseCase {
	return &GetAPIUseCase{
		apiRepo: apiRepo,
		logger:  logger,
	}
}

func (uc *GetAPIUseCase) Execute(ctx context.Context, cmd GetAPICommand) (*dto.APIDTO, error) {
	api, err := uc.apiRepo.GetBySID(ctx, cmd.APISID)
	if err != nil {
		if errors.Is(err, catalog.ErrAPINotFound) {
			return nil, err
		}
		uc.logger.Errorw("failed to fetch api", "error", err, "api_id", cmd.APISID)
		return nil, fmt.Errorf("failed to fetch api: %w", err)
	}

	return dto.ToAPIDTO(api), nil
}
