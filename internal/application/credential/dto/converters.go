package dto

import (
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/shared/mapper"
	"github.com/rasu25115/pickme/internal/shared/utils"
)

// ToAPIKeyDTO converts a credential to its masked DTO representation.
// usageCap is the display budget used for the percentage gauge.
func ToAPIKeyDTO(key *credential.APIKey, usageCap uint64) *APIKeyDTO {
	if key == nil {
		return nil
	}

	var lastUsed *int64
	if t := key.LastUsedAt(); t != nil {
		ts := t.Unix()
		lastUsed = &ts
	}

	return &APIKeyDTO{
		ID:           key.SID(),
		Name:         key.Name(),
		Provider:     key.Provider().String(),
		MaskedSecret: utils.MaskSecret(key.Secret()),
		Status:       string(key.Status()),
		UsageCount:   key.UsageCount(),
		UsagePercent: key.UsagePercent(usageCap),
		LastUsedAt:   lastUsed,
		CreatedAt:    key.CreatedAt().Unix(),
		UpdatedAt:    key.UpdatedAt().Unix(),
	}
}

// ToAPIKeyDTOs converts a slice of credentials to masked DTOs.
func ToAPIKeyDTOs(keys []*credential.APIKey, usageCap uint64) []*APIKeyDTO {
	return mapper.MapSlicePtr(keys, func(key *credential.APIKey) *APIKeyDTO {
		return ToAPIKeyDTO(key, usageCap)
	})
}
