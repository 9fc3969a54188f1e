package models

import (
	"time"

	"gorm.io/gorm"
)

// APIKeyModel is the persistence model for provider credentials. Secrets
// are stored raw; masking happens at the DTO layer on the way out.
type APIKeyModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"uniqueIndex;not null;size:32"`
	Name       string `gorm:"not null;size:100"`
	Provider   string `gorm:"size:50;index"`
	Secret     string `gorm:"not null;size:500"`
	Status     string `gorm:"not null;size:20;default:Active"`
	UsageCount uint64 `gorm:"not null;default:0"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (APIKeyModel) TableName() string {
	return "api_keys"
}
