package models

import (
	"time"
)

// PlanAPIModel is the persistence model for plan entitlements: one row per
// plan and API pair. APISID references the catalog by public ID so rows
// survive catalog deletions and are filtered out at read time instead.
type PlanAPIModel struct {
	ID         uint   `gorm:"primarykey"`
	PlanID     uint   `gorm:"not null;uniqueIndex:idx_plan_api"`
	APISID     string `gorm:"not null;size:32;uniqueIndex:idx_plan_api"`
	Enabled    bool   `gorm:"not null;default:false"`
	CreditCost uint64 `gorm:"not null;default:0"`
	BuyPrice   uint64 `gorm:"not null;default:0"`
	SellPrice  uint64 `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (PlanAPIModel) TableName() string {
	return "plan_apis"
}
