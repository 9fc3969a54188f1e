package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type DeleteAPICommand struct {
	APISID string
}

// DeleteAPIUseCase removes a catalog entry unconditionally. Rate plan
// entitlements that still reference the deleted API are skipped when plans
// are rendered, so no referential check is made here.
type DeleteAPIUseCase struct {
	apiRepo catalog.APIRepository
	logger  logger.Interface
}

func NewDeleteAPIUseCase(apiRepo catalog.APIRepository, logger logger.Interface) *DeleteAPIUseCase {
	return &DeleteAPIUseCase{
		apiRepo: apiRepo,
		logger:  logger,
	}
}

func (uc *DeleteAPIUseCase) Execute(ctx context.Context, cmd DeleteAPICommand) error {
	api, err := uc.apiRepo.GetBySID(ctx, cmd.APISID)
	if err != nil {
		if errors.Is(err, catalog.ErrAPINotFound) {
			return err
		}
		uc.logger.Errorw("failed to fetch api", "error", err, "api_id", cmd.APISID)
		return fmt.Errorf("failed to fetch api: %w", err)
	}

	if err := uc.apiRepo.Delete(ctx, api.ID()); err != nil {
		uc.logger.Errorw("failed to delete api", "error", err, "api_id", cmd.APISID)
		return fmt.Errorf("failed to delete api: %w", err)
	}

	uc.logger.Infow("api deleted", "api_id", cmd.APISID, "name", api.Name())

	return nil
}
