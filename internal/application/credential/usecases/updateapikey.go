package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/credential/dto"
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type UpdateAPIKeyCommand struct {
	KeySID   string
	Name     string
	Provider string
	Secret   string
	Status   string
}

type UpdateAPIKeyUseCase struct {
	keyRepo  credential.APIKeyRepository
	usageCap uint64
	logger   logger.Interface
}

func NewUpdateAPIKeyUseCase(keyRepo credential.APIKeyRepository, usageCap uint64, logger logger.Interface) *UpdateAPIKeyUseCase {
	return &UpdateAPIKeyUseCase{
		keyRepo:  keyRepo,
		usageCap: usageCap,
		logger:   logger,
	}
}

func (uc *UpdateAPIKeyUseCase) Execute(ctx context.Context, cmd UpdateAPIKeyCommand) (*dto.APIKeyDTO, error) {
	key, err := uc.keyRepo.GetBySID(ctx, cmd.KeySID)
	if err != nil {
		if errors.Is(err, credential.ErrKeyNotFound) {
			return nil, err
		}
		uc.logger.Errorw("failed to fetch api key", "error", err, "key_id", cmd.KeySID)
		return nil, fmt.Errorf("failed to fetch api key: %w", err)
	}

	if err := key.UpdateDetails(
		cmd.Name,
		credential.Provider(cmd.Provider),
		cmd.Secret,
		credential.KeyStatus(cmd.Status),
	); err != nil {
		uc.logger.Errorw("failed to update api key", "error", err, "key_id", cmd.KeySID)
		return nil, fmt.Errorf("failed to update api key: %w", err)
	}

	if err := uc.keyRepo.Update(ctx, key); err != nil {
		uc.logger.Errorw("failed to persist api key update", "error", err, "key_id", cmd.KeySID)
		return nil, fmt.Errorf("failed to persist api key update: %w", err)
	}

	uc.logger.Infow("api key updated", "key_id", key.SID(), "name", key.Name())

	return dto.ToAPIKeyDTO(key, uc.usageCap), nil
}
