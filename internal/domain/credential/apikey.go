package credential

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rasu25115/pickme/internal/shared/id"
)

// Provider identifies the upstream data vendor a credential belongs to.
type Provider string

const (
	ProviderSignzy         Provider = "Signzy"
	ProviderSurepass       Provider = "Surepass"
	ProviderTrueCaller     Provider = "TrueCaller"
	ProviderEmailValidator Provider = "EmailValidator"
	ProviderCustom         Provider = "Custom"
	// ProviderUnset is allowed: a key can be stored before it is assigned
	// to a vendor.
	ProviderUnset Provider = ""
)

// IsValid checks if the provider is one of the known vendors or unset
func (p Provider) IsValid() bool {
	switch p {
	case ProviderSignzy, ProviderSurepass, ProviderTrueCaller,
		ProviderEmailValidator, ProviderCustom, ProviderUnset:
		return true
	default:
		return false
	}
}

func (p Provider) String() string {
	return string(p)
}

// KeyStatus represents the activation state of a credential.
type KeyStatus string

const (
	KeyStatusActive   KeyStatus = "Active"
	KeyStatusInactive KeyStatus = "Inactive"
)

// IsValid checks if the key status is valid
func (s KeyStatus) IsValid() bool {
	return s == KeyStatusActive || s == KeyStatusInactive
}

// DefaultUsageCap is the assumed monthly request budget per key when the
// deployment does not configure one. Display only, nothing is enforced.
const DefaultUsageCap uint64 = 10000

// APIKey is a provider credential used to serve lookups upstream.
type APIKey struct {
	id         uint
	sid        string
	name       string
	provider   Provider
	secret     string
	status     KeyStatus
	usageCount uint64
	lastUsedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewAPIKey creates a new credential. Name and secret are required;
// provider may be left unset and status defaults to active.
func NewAPIKey(name string, provider Provider, secret string, status KeyStatus) (*APIKey, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("key name is required")
	}
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("key secret is required")
	}
	if !provider.IsValid() {
		return nil, fmt.Errorf("invalid provider: %s", provider)
	}
	if status == "" {
		status = KeyStatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid key status: %s", status)
	}

	sid, err := id.NewAPIKeyID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}

	now := time.Now()
	return &APIKey{
		sid:       sid,
		name:      name,
		provider:  provider,
		secret:    secret,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAPIKey reconstructs an APIKey from persistence
func ReconstructAPIKey(keyID uint, sid, name, provider, secret, status string, usageCount uint64, lastUsedAt *time.Time, createdAt, updatedAt time.Time) (*APIKey, error) {
	if keyID == 0 {
		return nil, fmt.Errorf("key ID cannot be zero")
	}

	p := Provider(provider)
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid provider: %s", provider)
	}

	s := KeyStatus(status)
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid key status: %s", status)
	}

	return &APIKey{
		id:         keyID,
		sid:        sid,
		name:       name,
		provider:   p,
		secret:     secret,
		status:     s,
		usageCount: usageCount,
		lastUsedAt: lastUsedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (k *APIKey) ID() uint {
	return k.id
}

func (k *APIKey) SetID(keyID uint) error {
	if k.id != 0 {
		return fmt.Errorf("key ID is already set")
	}
	if keyID == 0 {
		return fmt.Errorf("key ID cannot be zero")
	}
	k.id = keyID
	return nil
}

func (k *APIKey) SID() string {
	return k.sid
}

func (k *APIKey) Name() string {
	return k.name
}

func (k *APIKey) Provider() Provider {
	return k.provider
}

// Secret returns the raw secret. Callers that render it must go through
// the masked DTO representation unless the operator explicitly reveals it.
func (k *APIKey) Secret() string {
	return k.secret
}

func (k *APIKey) Status() KeyStatus {
	return k.status
}

func (k *APIKey) UsageCount() uint64 {
	return k.usageCount
}

func (k *APIKey) LastUsedAt() *time.Time {
	return k.lastUsedAt
}

func (k *APIKey) CreatedAt() time.Time {
	return k.createdAt
}

func (k *APIKey) UpdatedAt() time.Time {
	return k.updatedAt
}

// UpdateDetails replaces the editable fields. Usage counters are managed
// separately and survive edits untouched.
func (k *APIKey) UpdateDetails(name string, provider Provider, secret string, status KeyStatus) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("key name is required")
	}
	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("key secret is required")
	}
	if !provider.IsValid() {
		return fmt.Errorf("invalid provider: %s", provider)
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid key status: %s", status)
	}

	k.name = name
	k.provider = provider
	k.secret = secret
	k.status = status
	k.updatedAt = time.Now()
	return nil
}

// ToggleStatus flips the key between active and inactive without touching
// any other field.
func (k *APIKey) ToggleStatus() {
	if k.status == KeyStatusActive {
		k.status = KeyStatusInactive
	} else {
		k.status = KeyStatusActive
	}
	k.updatedAt = time.Now()
}

// RecordUsage counts one upstream call against the key.
func (k *APIKey) RecordUsage() {
	k.usageCount++
	now := time.Now()
	k.lastUsedAt = &now
	k.updatedAt = now
}

// IsActive reports whether the key may be used for upstream calls.
func (k *APIKey) IsActive() bool {
	return k.status == KeyStatusActive
}

// UsagePercent returns the usage as a percentage of the monthly cap,
// clamped to 100 so over-budget keys still render sanely.
func (k *APIKey) UsagePercent(monthlyCap uint64) int {
	if monthlyCap == 0 {
		monthlyCap = DefaultUsageCap
	}
	ratio := float64(k.usageCount) / float64(monthlyCap)
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

// MatchesSearch reports whether the key matches a case-insensitive substring
// search over name or provider. An empty term matches everything.
func (k *APIKey) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(k.name), term) ||
		strings.Contains(strings.ToLower(k.provider.String()), term)
}
