package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidKey(t *testing.T) *APIKey {
	t.Helper()
	key, err := NewAPIKey("Signzy Production", ProviderSignzy, "sk_live_4f8b2c91d3e7a650", KeyStatusActive)
	require.NoError(t, err)
	return key
}

func TestNewAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		keyName  string
		provider Provider
		secret   string
		status   KeyStatus
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid key",
			keyName:  "Signzy Production",
			provider: ProviderSignzy,
			secret:   "sk_live_4f8b2c91",
			status:   KeyStatusActive,
		},
		{
			name:     "provider may be unset",
			keyName:  "Scratch Key",
			provider: ProviderUnset,
			secret:   "sk_test_123",
			status:   KeyStatusActive,
		},
		{
			name:     "status defaults to active",
			keyName:  "Surepass Backup",
			provider: ProviderSurepass,
			secret:   "sk_test_123",
			status:   "",
		},
		{
			name:     "empty name",
			keyName:  "",
			provider: ProviderSignzy,
			secret:   "sk_test_123",
			status:   KeyStatusActive,
			wantErr:  true,
			errMsg:   "key name is required",
		},
		{
			name:     "empty secret",
			keyName:  "Signzy Production",
			provider: ProviderSignzy,
			secret:   "   ",
			status:   KeyStatusActive,
			wantErr:  true,
			errMsg:   "key secret is required",
		},
		{
			name:     "unknown provider",
			keyName:  "Signzy Production",
			provider: Provider("Experian"),
			secret:   "sk_test_123",
			status:   KeyStatusActive,
			wantErr:  true,
			errMsg:   "invalid provider",
		},
		{
			name:     "unknown status",
			keyName:  "Signzy Production",
			provider: ProviderSignzy,
			secret:   "sk_test_123",
			status:   KeyStatus("Paused"),
			wantErr:  true,
			errMsg:   "invalid key status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewAPIKey(tt.keyName, tt.provider, tt.secret, tt.status)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, key)
			assert.True(t, key.IsActive())
			assert.True(t, strings.HasPrefix(key.SID(), "key_"))
			assert.Equal(t, uint64(0), key.UsageCount())
			assert.Nil(t, key.LastUsedAt())
		})
	}
}

func TestAPIKey_ToggleStatus(t *testing.T) {
	key := newValidKey(t)
	require.True(t, key.IsActive())

	key.ToggleStatus()
	assert.Equal(t, KeyStatusInactive, key.Status())
	assert.False(t, key.IsActive())

	// a second toggle restores the original state
	key.ToggleStatus()
	assert.Equal(t, KeyStatusActive, key.Status())
	assert.True(t, key.IsActive())
}

func TestAPIKey_RecordUsage(t *testing.T) {
	key := newValidKey(t)

	key.RecordUsage()
	key.RecordUsage()
	key.RecordUsage()

	assert.Equal(t, uint64(3), key.UsageCount())
	require.NotNil(t, key.LastUsedAt())
}

func TestAPIKey_UsagePercent(t *testing.T) {
	tests := []struct {
		name  string
		usage uint64
		cap   uint64
		want  int
	}{
		{"zero usage", 0, 10000, 0},
		{"quarter used", 2500, 10000, 25},
		{"rounds to nearest", 3333, 10000, 33},
		{"fully used", 10000, 10000, 100},
		{"over budget clamps to 100", 12000, 10000, 100},
		{"zero cap falls back to default", 5000, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := newValidKey(t)
			for i := uint64(0); i < tt.usage; i++ {
				key.usageCount++
			}
			assert.Equal(t, tt.want, key.UsagePercent(tt.cap))
		})
	}
}

func TestAPIKey_UpdateDetails(t *testing.T) {
	key := newValidKey(t)

	err := key.UpdateDetails("Signzy Staging", ProviderSignzy, "sk_test_9999", KeyStatusInactive)
	require.NoError(t, err)
	assert.Equal(t, "Signzy Staging", key.Name())
	assert.Equal(t, "sk_test_9999", key.Secret())
	assert.Equal(t, KeyStatusInactive, key.Status())

	// usage counters survive edits
	key2 := newValidKey(t)
	key2.RecordUsage()
	require.NoError(t, key2.UpdateDetails("Renamed", ProviderCustom, "sk_new", KeyStatusActive))
	assert.Equal(t, uint64(1), key2.UsageCount())
	assert.NotNil(t, key2.LastUsedAt())

	err = key.UpdateDetails("", ProviderSignzy, "sk_test_9999", KeyStatusActive)
	require.Error(t, err)
}

func TestAPIKey_MatchesSearch(t *testing.T) {
	key := newValidKey(t)

	assert.True(t, key.MatchesSearch(""))
	assert.True(t, key.MatchesSearch("production"))
	assert.True(t, key.MatchesSearch("SIGNZY"))
	assert.False(t, key.MatchesSearch("surepass"))
}

func TestReconstructAPIKey(t *testing.T) {
	key := newValidKey(t)

	got, err := ReconstructAPIKey(9, key.SID(), key.Name(), key.Provider().String(),
		key.Secret(), string(key.Status()), 250, nil, key.CreatedAt(), key.UpdatedAt())
	require.NoError(t, err)
	assert.Equal(t, uint(9), got.ID())
	assert.Equal(t, uint64(250), got.UsageCount())

	_, err = ReconstructAPIKey(0, key.SID(), key.Name(), key.Provider().String(),
		key.Secret(), string(key.Status()), 0, nil, key.CreatedAt(), key.UpdatedAt())
	require.Error(t, err)

	_, err = ReconstructAPIKey(9, key.SID(), key.Name(), "Experian",
		key.Secret(), string(key.Status()), 0, nil, key.CreatedAt(), key.UpdatedAt())
	require.Error(t, err)
}
