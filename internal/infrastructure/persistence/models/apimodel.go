package models

import (
	"time"

	"gorm.io/gorm"
)

// APIModel is the persistence model for catalog entries. It is the
// anti-corruption layer between the domain and the database.
type APIModel struct {
	ID                  uint   `gorm:"primarykey"`
	SID                 string `gorm:"uniqueIndex;not null;size:32"`
	Name                string `gorm:"not null;size:100"`
	Type                string `gorm:"not null;size:20;index"`
	GlobalBuyPrice      uint64 `gorm:"not null;default:0"`
	GlobalSellPrice     uint64 `gorm:"not null;default:0"`
	DefaultCreditCharge uint64 `gorm:"not null;default:0"`
	Description         string `gorm:"size:500"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (APIModel) TableName() string {
	return "apis"
}
