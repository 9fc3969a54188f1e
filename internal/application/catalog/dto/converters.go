package dto

import (
	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/shared/mapper"
)

// ToAPIDTO converts a catalog API to its DTO representation.
func ToAPIDTO(api *catalog.API) *APIDTO {
	if api == nil {
		return nil
	}
	return &APIDTO{
		ID:                  api.SID(),
		Name:                api.Name(),
		Type:                api.Type().String(),
		GlobalBuyPrice:      api.GlobalBuyPrice(),
		GlobalSellPrice:     api.GlobalSellPrice(),
		DefaultCreditCharge: api.DefaultCreditCharge(),
		Description:         api.Description(),
		CreatedAt:           api.CreatedAt().Unix(),
		UpdatedAt:           api.UpdatedAt().Unix(),
	}
}

// ToAPIDTOs converts a slice of catalog APIs to DTOs.
func ToAPIDTOs(apis []*catalog.API) []*APIDTO {
	return mapper.MapSlicePtr(apis, ToAPIDTO)
}
