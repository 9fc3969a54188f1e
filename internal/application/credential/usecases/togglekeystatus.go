package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/credential/dto"
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type ToggleKeyStatusCommand struct {
	KeySID string
}

// ToggleKeyStatusUseCase flips a credential between active and inactive.
// Only the status changes; usage counters and the secret are untouched.
type ToggleKeyStatusUseCase struct {
	keyRepo  credential.APIKeyRepository
	usageCap uint64
	logger   logger.Interface
}

func NewToggleKeyStatusUseCase(keyRepo credential.APIKeyRepository, usageCap uint64, logger logger.Interface) *ToggleKeyStatusUseCase {
	return &ToggleKeyStatusUseCase{
		keyRepo:  keyRepo,
		usageCap: usageCap,
		logger:   logger,
	}
}

func (uc *ToggleKeyStatusUseCase) Execute(ctx context.Context, cmd ToggleKeyStatusCommand) (*dto.APIKeyDTO, error) {
	key, err := uc.keyRepo.GetBySID(ctx, cmd.KeySID)
	if err != nil {
		if errors.Is(err, credential.ErrKeyNotFound) {
			return nil, err
		}
		uc.logger.Errorw("failed to fetch api key", "error", err, "key_id", cmd.KeySID)
		return nil, fmt.Errorf("failed to fetch api key: %w", err)
	}

	key.ToggleStatus()

	if err := uc.keyRepo.Update(ctx, key); err != nil {
		uc.logger.Errorw("failed to persist key status", "error", err, "key_id", cmd.KeySID)
		return nil, fmt.Errorf("failed to persist key status: %w", err)
	}

	uc.logger.Infow("api key status toggled", "key_id", key.SID(), "status", key.Status())

	return dto.ToAPIKeyDTO(key, uc.usageCap), nil
}
