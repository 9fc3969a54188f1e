package rateplan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := NewPlan("Police Basic", UserTypePolice, 500, true, false, DefaultCreditRate)
	require.NoError(t, err)
	return plan
}

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name     string
		planName string
		userType UserType
		fee      uint64
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid police plan",
			planName: "Police Basic",
			userType: UserTypePolice,
			fee:      500,
		},
		{
			name:     "valid private plan",
			planName: "Private Pro",
			userType: UserTypePrivate,
			fee:      1500,
		},
		{
			name:     "valid custom plan",
			planName: "Agency Custom",
			userType: UserTypeCustom,
			fee:      10000,
		},
		{
			name:     "empty name rejected",
			planName: "",
			userType: UserTypePolice,
			fee:      500,
			wantErr:  true,
			errMsg:   "plan name is required",
		},
		{
			name:     "whitespace name rejected",
			planName: "   ",
			userType: UserTypePolice,
			fee:      500,
			wantErr:  true,
			errMsg:   "plan name is required",
		},
		{
			name:     "zero fee rejected",
			planName: "Police Basic",
			userType: UserTypePolice,
			fee:      0,
			wantErr:  true,
			errMsg:   "monthly fee must be greater than zero",
		},
		{
			name:     "unknown user type",
			planName: "Police Basic",
			userType: UserType("Government"),
			fee:      500,
			wantErr:  true,
			errMsg:   "invalid user type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.planName, tt.userType, tt.fee, true, false, DefaultCreditRate)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, plan)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, plan)
			assert.Equal(t, tt.planName, plan.PlanName())
			assert.Equal(t, tt.fee, plan.MonthlyFee())
			assert.Equal(t, PlanStatusActive, plan.Status())
			assert.True(t, strings.HasPrefix(plan.SID(), "plan_"))
		})
	}
}

func TestDeriveCredits(t *testing.T) {
	tests := []struct {
		name string
		fee  uint64
		rate uint64
		want uint64
	}{
		{"exact multiple", 500, 10, 50},
		{"rounds down", 999, 10, 99},
		{"thousand", 1000, 10, 100},
		{"below one credit", 9, 10, 0},
		{"zero rate uses default", 500, 0, 50},
		{"custom rate", 500, 25, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveCredits(tt.fee, tt.rate))
		})
	}
}

func TestNewPlan_DerivesCredits(t *testing.T) {
	plan, err := NewPlan("Police Basic", UserTypePolice, 999, true, false, DefaultCreditRate)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), plan.DefaultCredits())
}

func TestPlan_UpdateDetails(t *testing.T) {
	plan := newValidPlan(t)
	require.Equal(t, uint64(50), plan.DefaultCredits())

	err := plan.UpdateDetails("Police Plus", UserTypePolice, 1200, false, true, DefaultCreditRate)
	require.NoError(t, err)
	assert.Equal(t, "Police Plus", plan.PlanName())
	assert.Equal(t, uint64(1200), plan.MonthlyFee())
	// credits follow the new fee
	assert.Equal(t, uint64(120), plan.DefaultCredits())
	assert.False(t, plan.RenewalRequired())
	assert.True(t, plan.TopupAllowed())

	err = plan.UpdateDetails("Police Plus", UserTypePolice, 0, false, true, DefaultCreditRate)
	require.Error(t, err)
	assert.Equal(t, uint64(1200), plan.MonthlyFee())
}

func TestPlan_StatusTransitions(t *testing.T) {
	plan := newValidPlan(t)
	require.True(t, plan.IsActive())

	plan.Deactivate()
	assert.Equal(t, PlanStatusInactive, plan.Status())

	plan.Activate()
	assert.True(t, plan.IsActive())
}

func TestReconstructPlan(t *testing.T) {
	plan := newValidPlan(t)

	got, err := ReconstructPlan(3, plan.SID(), plan.PlanName(), plan.UserType().String(),
		plan.MonthlyFee(), plan.DefaultCredits(), plan.RenewalRequired(), plan.TopupAllowed(),
		string(plan.Status()), plan.CreatedAt(), plan.UpdatedAt())
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID())
	assert.Equal(t, plan.DefaultCredits(), got.DefaultCredits())

	_, err = ReconstructPlan(0, plan.SID(), plan.PlanName(), plan.UserType().String(),
		500, 50, true, false, string(plan.Status()), plan.CreatedAt(), plan.UpdatedAt())
	require.Error(t, err)

	_, err = ReconstructPlan(3, plan.SID(), plan.PlanName(), "Government",
		500, 50, true, false, string(plan.Status()), plan.CreatedAt(), plan.UpdatedAt())
	require.Error(t, err)
}
