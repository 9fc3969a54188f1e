package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/credential/dto"
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type RecordKeyUsageCommand struct {
	KeySID string
}

// RecordKeyUsageUseCase counts one upstream call against a provider key.
// The dashboard only reads the counters; this is the write path the
// proxy calls after each provider request.
type RecordKeyUsageUseCase struct {
	keyRepo  credential.APIKeyRepository
	usageCap uint64
	logger   logger.Interface
}

func NewRecordKeyUsageUseCase(keyRepo credential.APIKeyRepository, usageCap uint64, logger logger.Interface) *RecordKeyUsageUseCase {
	return &RecordKeyUsageUseCase{
		keyRepo:  keyRepo,
		usageCap: usageCap,
		logger:   logger,
	}
}

func (uc *RecordKeyUsageUseCase) Execute(ctx context.Context, cmd RecordKeyUsageCommand) (*dto.APIKeyDTO, error) {
	key, err := uc.keyRepo.GetBySID(ctx, cmd.KeySID)
	if err != nil {
		if errors.Is(err, credential.ErrKeyNotFound) {
			return nil, err
		}
		uc.logger.Errorw("failed to get api key", "key_id", cmd.KeySID, "error", err)
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}

	key.RecordUsage()

	if err := uc.keyRepo.Update(ctx, key); err != nil {
		uc.logger.Errorw("failed to record api key usage", "key_id", cmd.KeySID, "error", err)
		return nil, fmt.Errorf("failed to record api key usage: %w", err)
	}

	return dto.ToAPIKeyDTO(key, uc.usageCap), nil
}
