package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/shared/logger"
)

func TestGetCatalogStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("counts disabled products out of active", func(t *testing.T) {
		apiRepo := new(mockAPIRepository)

		retired, err := catalog.NewAPI("Legacy Lookup", catalog.APITypeDisabled, 0, 0, 0, "")
		require.NoError(t, err)
		apis := append(testAPIs(t), retired)
		apiRepo.On("List", mock.Anything).Return(apis, nil)

		uc := NewGetCatalogStatsUseCase(apiRepo, logger.NewNop())

		stats, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalAPIs)
		assert.Equal(t, 2, stats.ActiveAPIs)
	})

	t.Run("empty catalog reports zeros", func(t *testing.T) {
		apiRepo := new(mockAPIRepository)
		apiRepo.On("List", mock.Anything).Return([]*catalog.API{}, nil)

		uc := NewGetCatalogStatsUseCase(apiRepo, logger.NewNop())

		stats, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalAPIs)
		assert.Equal(t, 0, stats.ActiveAPIs)
	})
}
