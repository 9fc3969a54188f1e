package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

func TestGetKeyStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("sums usage and counts active keys", func(t *testing.T) {
		keyRepo := new(mockAPIKeyRepository)

		now := time.Now()
		inactive, err := credential.ReconstructAPIKey(6, "key_def456ghi789", "Surepass Backup", "Surepass",
			"sp_test_9a1b2c3d4e5f6071", "Inactive", 300, nil, now, now)
		require.NoError(t, err)

		keyRepo.On("List", mock.Anything).Return([]*credential.APIKey{
			storedKey(t, 2500),
			inactive,
		}, nil)

		uc := NewGetKeyStatsUseCase(keyRepo, logger.NewNop())

		stats, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalKeys)
		assert.Equal(t, 1, stats.ActiveKeys)
		assert.Equal(t, uint64(2800), stats.TotalUsage)
	})
}

func TestRecordKeyUsageUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("increments usage and stamps last used", func(t *testing.T) {
		keyRepo := new(mockAPIKeyRepository)
		key := storedKey(t, 99)
		keyRepo.On("GetBySID", mock.Anything, "key_abc123def456").Return(key, nil)
		keyRepo.On("Update", mock.Anything, key).Return(nil)

		uc := NewRecordKeyUsageUseCase(keyRepo, testUsageCap, logger.NewNop())

		result, err := uc.Execute(ctx, RecordKeyUsageCommand{KeySID: "key_abc123def456"})
		require.NoError(t, err)
		assert.Equal(t, uint64(100), result.UsageCount)
		require.NotNil(t, result.LastUsedAt)
		keyRepo.AssertExpectations(t)
	})

	t.Run("unknown key passes through not found", func(t *testing.T) {
		keyRepo := new(mockAPIKeyRepository)
		keyRepo.On("GetBySID", mock.Anything, "key_missing000000").Return(nil, credential.ErrKeyNotFound)

		uc := NewRecordKeyUsageUseCase(keyRepo, testUsageCap, logger.NewNop())

		result, err := uc.Execute(ctx, RecordKeyUsageCommand{KeySID: "key_missing000000"})
		require.ErrorIs(t, err, credential.ErrKeyNotFound)
		assert.Nil(t, result)
		keyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
