package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type DeleteAPIKeyCommand struct {
	KeySID string
}

type DeleteAPIKeyUseCase struct {
	keyRepo credential.APIKeyRepository
	logger  logger.Interface
}

func NewDeleteAPIKeyUseCase(keyRepo credential.APIKeyRepository, logger logger.Interface) *DeleteAPIKeyUseCase {
	return &DeleteAPIKeyUseCase{
		keyRepo: keyRepo,
		logger:  logger,
	}
}

func (uc *DeleteAPIKeyUseCase) Execute(ctx context.Context, cmd DeleteAPIKeyCommand) error {
	key, err := uc.keyRepo.GetBySID(ctx, cmd.KeySID)
	if err != nil {
		if errors.Is(err, credential.ErrKeyNotFound) {
			return err
		}
		uc.logger.Errorw("failed to fetch api key", "error", err, "key_id", cmd.KeySID)
		return fmt.Errorf("failed to fetch api key: %w", err)
	}

	if err := uc.keyRepo.Delete(ctx, key.ID()); err != nil {
		uc.logger.Errorw("failed to delete api key", "error", err, "key_id", cmd.KeySID)
		return fmt.Errorf("failed to delete api key: %w", err)
	}

	uc.logger.Infow("api key deleted", "key_id", cmd.KeySID, "name", key.Name())

	return nil
}
