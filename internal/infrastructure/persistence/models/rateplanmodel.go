package models

import (
	"time"

	"gorm.io/gorm"
)

// RatePlanModel is the persistence model for rate plans. DefaultCredits is
// stored denormalized even though it derives from MonthlyFee, so historic
// rows keep the allowance they were sold with if the credit rate changes.
type RatePlanModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"uniqueIndex;not null;size:32"`
	PlanName        string `gorm:"not null;size:100"`
	UserType        string `gorm:"not null;size:20;index"`
	MonthlyFee      uint64 `gorm:"not null"`
	DefaultCredits  uint64 `gorm:"not null;default:0"`
	RenewalRequired bool   `gorm:"not null;default:false"`
	TopupAllowed    bool   `gorm:"not null;default:false"`
	Status          string `gorm:"not null;size:20;default:Active"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (RatePlanModel) TableName() string {
	return "rate_plans"
}
