package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/rasu25115/pickme/internal/shared/id"
)

// APIType classifies a sellable data-lookup product.
type APIType string

const (
	// APITypeFree products are bundled with every plan at no credit cost.
	APITypeFree APIType = "FREE"
	// APITypePro products carry per-plan credit and price overrides.
	APITypePro APIType = "PRO"
	// APITypeDisabled products stay in the catalog but cannot be sold.
	APITypeDisabled APIType = "DISABLED"
)

// IsValid checks if the API type is valid
func (t APIType) IsValid() bool {
	switch t {
	case APITypeFree, APITypePro, APITypeDisabled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the API type
func (t APIType) String() string {
	return string(t)
}

// API is a sellable data-lookup product in the reseller catalog.
// Global prices are the operator's defaults; rate plans may override them
// per entitlement without touching the catalog record.
type API struct {
	id                  uint
	sid                 string
	name                string
	apiType             APIType
	globalBuyPrice      uint64
	globalSellPrice     uint64
	defaultCreditCharge uint64
	description         string
	createdAt           time.Time
	updatedAt           time.Time
}

// NewAPI creates a new catalog entry. Name is required; prices and the
// credit charge default to zero when the caller has nothing better.
func NewAPI(name string, apiType APIType, globalBuyPrice, globalSellPrice, defaultCreditCharge uint64, description string) (*API, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("api name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("api name too long (max 100 characters)")
	}
	if !apiType.IsValid() {
		return nil, fmt.Errorf("invalid api type: %s", apiType)
	}

	sid, err := id.NewAPIID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api ID: %w", err)
	}

	now := time.Now()
	return &API{
		sid:                 sid,
		name:                name,
		apiType:             apiType,
		globalBuyPrice:      globalBuyPrice,
		globalSellPrice:     globalSellPrice,
		defaultCreditCharge: defaultCreditCharge,
		description:         description,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructAPI reconstructs an API from persistence
func ReconstructAPI(apiID uint, sid, name string, apiType string, globalBuyPrice, globalSellPrice, defaultCreditCharge uint64, description string, createdAt, updatedAt time.Time) (*API, error) {
	if apiID == 0 {
		return nil, fmt.Errorf("api ID cannot be zero")
	}

	t := APIType(apiType)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid api type: %s", apiType)
	}

	return &API{
		id:                  apiID,
		sid:                 sid,
		name:                name,
		apiType:             t,
		globalBuyPrice:      globalBuyPrice,
		globalSellPrice:     globalSellPrice,
		defaultCreditCharge: defaultCreditCharge,
		description:         description,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (a *API) ID() uint {
	return a.id
}

func (a *API) SetID(apiID uint) error {
	if a.id != 0 {
		return fmt.Errorf("api ID is already set")
	}
	if apiID == 0 {
		return fmt.Errorf("api ID cannot be zero")
	}
	a.id = apiID
	return nil
}

func (a *API) SID() string {
	return a.sid
}

func (a *API) Name() string {
	return a.name
}

func (a *API) Type() APIType {
	return a.apiType
}

func (a *API) GlobalBuyPrice() uint64 {
	return a.globalBuyPrice
}

func (a *API) GlobalSellPrice() uint64 {
	return a.globalSellPrice
}

func (a *API) DefaultCreditCharge() uint64 {
	return a.defaultCreditCharge
}

func (a *API) Description() string {
	return a.description
}

func (a *API) CreatedAt() time.Time {
	return a.createdAt
}

func (a *API) UpdatedAt() time.Time {
	return a.updatedAt
}

// UpdateDetails replaces all editable fields at once. The edit form submits
// the full record, so partial updates are not supported.
func (a *API) UpdateDetails(name string, apiType APIType, globalBuyPrice, globalSellPrice, defaultCreditCharge uint64, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("api name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("api name too long (max 100 characters)")
	}
	if !apiType.IsValid() {
		return fmt.Errorf("invalid api type: %s", apiType)
	}

	a.name = name
	a.apiType = apiType
	a.globalBuyPrice = globalBuyPrice
	a.globalSellPrice = globalSellPrice
	a.defaultCreditCharge = defaultCreditCharge
	a.description = description
	a.updatedAt = time.Now()
	return nil
}

// IsSellable reports whether the product can be offered on plans.
func (a *API) IsSellable() bool {
	return a.apiType != APITypeDisabled
}

// IsFree reports whether the product belongs to the free tier.
func (a *API) IsFree() bool {
	return a.apiType == APITypeFree
}

// MatchesSearch reports whether the API matches a case-insensitive substring
// search over name or description. An empty term matches everything.
func (a *API) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.name), term) ||
		strings.Contains(strings.ToLower(a.description), term)
}
