package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/credential/dto"
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type RevealAPIKeyCommand struct {
	KeySID string
}

// RevealAPIKeyUseCase returns the raw secret for one credential. This is the
// only read path that bypasses masking, and each reveal is logged.
type RevealAPIKeyUseCase struct {
	keyRepo credential.APIKeyRepository
	logger  logger.Interface
}

func NewRevealAPIKeyUseCase(keyRepo credential.APIKeyRepository, logger logger.Interface) *RevealAPIKeyUseCase {
	return &RevealAPIKeyUseCase{
		keyRepo: keyRepo,
		logger:  logger,
	}
}

func (uc *RevealAPIKeyUseCase) Execute(ctx context.Context, cmd RevealAPIKeyCommand) (*dto.RevealedKeyDTO, error) {
	key, err := uc.keyRepo.GetBySID(ctx, cmd.KeySID)
	if err != nil {
		if errors.Is(err, credential.ErrKeyNotFound) {
			return nil, err
		}
		uc.logger.Errorw("failed to fetch api key", "error", err, "key_id", cmd.KeySID)
		return nil, fmt.Errorf("failed to fetch api key: %w", err)
	}

	uc.logger.Infow("api key secret revealed", "key_id", key.SID(), "name", key.Name())

	return &dto.RevealedKeyDTO{
		ID:     key.SID(),
		Secret: key.Secret(),
	}, nil
}
