package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/catalog/dto"
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type UpdateAPICommand struct {
	APISID              string
	Name                string
	Type                string
	GlobalBuyPrice      uint64
	GlobalSellPrice     uint64
	DefaultCreditCharge uint64
	Description         string
}

type UpdateAPIUseCase struct {
	apiRepo catalog.APIRepository
	logger  logger.Interface
}

func NewUpdateAPIUseCase(apiRepo catalog.APIRepository, logger logger.Interface) *UpdateAPIUseCase {
	return &UpdateAPIUseCase{
		apiRepo: apiRepo,
		logger:  logger,
	}
}

func (uc *UpdateAPIUseCase) Execute(ctx context.Context, cmd UpdateAPICommand) (*dto.APIDTO, error) {
	api, err := uc.apiRepo.GetBySID(ctx, cmd.APISID)
	if err != nil {
		if errors.Is(err, catalog.ErrAPINotFound) {
			return nil, err
		}
		uc.logger.Errorw("failed to fetch api", "error", err, "api_id", cmd.APISID)
		return nil, fmt.Errorf("failed to fetch api: %w", err)
	}

	if err := api.UpdateDetails(
		cmd.Name,
		catalog.APIType(cmd.Type),
		cmd.GlobalBuyPrice,
		cmd.GlobalSellPrice,
		cmd.DefaultCreditCharge,
		cmd.Description,
	); err != nil {
		uc.logger.Errorw("failed to update api", "error", err, "api_id", cmd.APISID)
		return nil, fmt.Errorf("failed to update api: %w", err)
	}

	if err := uc.apiRepo.Update(ctx, api); err != nil {
		uc.logger.Errorw("failed to persist api update", "error", err, "api_id", cmd.APISID)
		return nil, fmt.Errorf("failed to persist api update: %w", err)
	}

	uc.logger.Infow("api updated", "api_id", api.SID(), "name", api.Name())

	return dto.ToAPIDTO(api), nil
}
