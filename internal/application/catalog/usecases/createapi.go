package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/catalog/dto"
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type CreateAPICommand struct {
	Name                string
	Type                string
	GlobalBuyPrice      uint64
	GlobalSellPrice     uint64
	DefaultCreditCharge uint64
	Description         string
}

type CreateAPIUseCase struct {
	apiRepo catalog.APIRepository
	logger  logger.Interface
}

func NewCreateAPIUseCase(apiRepo catalog.APIRepository, logger logger.Interface) *CreateAPIUseCase {
	return &CreateAPIUseCase{
		apiRepo: apiRepo,
		logger:  logger,
	}
}

func (uc *CreateAPIUseCase) Execute(ctx context.Context, cmd CreateAPICommand) (*dto.APIDTO, error) {
	api, err := catalog.NewAPI(
		cmd.Name,
		catalog.APIType(cmd.Type),
		cmd.GlobalBuyPrice,
		cmd.GlobalSellPrice,
		cmd.DefaultCreditCharge,
		cmd.Description,
	)
	if err != nil {
		uc.logger.Errorw("failed to create api", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create api: %w", err)
	}

	if err := uc.apiRepo.Create(ctx, api); err != nil {
		uc.logger.Errorw("failed to persist api", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to persist api: %w", err)
	}

	uc.logger.Infow("api created", "api_id", api.SID(), "name", api.Name(), "type", api.Type())

	return dto.ToAPIDTO(api), nil
}
