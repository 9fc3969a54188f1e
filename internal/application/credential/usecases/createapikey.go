package usecases

import (
	"context"
	"fmt"

	"github.com/rasu25115/pickme/internal/application/credential/dto"
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

type CreateAPIKeyCommand struct {
	Name     string
	Provider string
	Secret   string
	Status   string
}

type CreateAPIKeyUseCase struct {
	keyRepo  credential.APIKeyRepository
	usageCap uint64
	logger   logger.Interface
}

func NewCreateAPIKeyUseCase(keyRepo credential.APIKeyRepository, usageCap uint64, logger logger.Interface) *CreateAPIKeyUseCase {
	return &CreateAPIKeyUseCase{
		keyRepo:  keyRepo,
		usageCap: usageCap,
		logger:   logger,
	}
}

func (uc *CreateAPIKeyUseCase) Execute(ctx context.Context, cmd CreateAPIKeyCommand) (*dto.APIKeyDTO, error) {
	key, err := credential.NewAPIKey(
		cmd.Name,
		credential.Provider(cmd.Provider),
		cmd.Secret,
		credential.KeyStatus(cmd.Status),
	)
	if err != nil {
		uc.logger.Errorw("failed to create api key", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}

	if err := uc.keyRepo.Create(ctx, key); err != nil {
		uc.logger.Errorw("failed to persist api key", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to persist api key: %w", err)
	}

	// never log the secret, masked or otherwise
	uc.logger.Infow("api key created", "key_id", key.SID(), "name", key.Name(), "provider", key.Provider())

	return dto.ToAPIKeyDTO(key, uc.usageCap), nil
}
