package migration

import (
	"github.com/rasu25115/pickme/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model covered by migrations.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.APIModel{},
		&models.APIKeyModel{},
		&models.RatePlanModel{},
		&models.PlanAPIModel{},
	}
}
