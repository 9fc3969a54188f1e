package rateplan

import (
	"fmt"
	"strings"
	"time"

	"github.com/rasu25115/pickme/internal/shared/id"
)

// UserType is the customer tier a plan is sold to.
type UserType string

const (
	UserTypePolice  UserType = "Police"
	UserTypePrivate UserType = "Private"
	UserTypeCustom  UserType = "Custom"
)

// IsValid checks if the user type is valid
func (u UserType) IsValid() bool {
	switch u {
	case UserTypePolice, UserTypePrivate, UserTypeCustom:
		return true
	default:
		return false
	}
}

func (u UserType) String() string {
	return string(u)
}

// PlanStatus represents the sale state of a plan.
type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "Active"
	PlanStatusInactive PlanStatus = "Inactive"
)

// IsValid checks if the plan status is valid
func (s PlanStatus) IsValid() bool {
	return s == PlanStatusActive || s == PlanStatusInactive
}

// DefaultCreditRate is the amount of monthly fee, in rupees, that buys one
// credit when the deployment does not configure a rate.
const DefaultCreditRate uint64 = 10

// Plan is a subscription product sold to one customer tier. Default credits
// are always derived from the monthly fee at the credit rate; they are never
// set directly.
type Plan struct {
	id              uint
	sid             string
	planName        string
	userType        UserType
	monthlyFee      uint64
	defaultCredits  uint64
	renewalRequired bool
	topupAllowed    bool
	status          PlanStatus
	createdAt       time.Time
	updatedAt       time.Time
}

// NewPlan creates a new rate plan. The plan name must be non-empty after
// trimming and the monthly fee strictly positive; both are checked before
// anything is persisted.
func NewPlan(planName string, userType UserType, monthlyFee uint64, renewalRequired, topupAllowed bool, creditRate uint64) (*Plan, error) {
	planName = strings.TrimSpace(planName)
	if planName == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(planName) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if !userType.IsValid() {
		return nil, fmt.Errorf("invalid user type: %s", userType)
	}
	if monthlyFee == 0 {
		return nil, fmt.Errorf("monthly fee must be greater than zero")
	}
	if creditRate == 0 {
		creditRate = DefaultCreditRate
	}

	sid, err := id.NewRatePlanID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan ID: %w", err)
	}

	now := time.Now()
	return &Plan{
		sid:             sid,
		planName:        planName,
		userType:        userType,
		monthlyFee:      monthlyFee,
		defaultCredits:  DeriveCredits(monthlyFee, creditRate),
		renewalRequired: renewalRequired,
		topupAllowed:    topupAllowed,
		status:          PlanStatusActive,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructPlan reconstructs a plan from persistence
func ReconstructPlan(planID uint, sid, planName, userType string, monthlyFee, defaultCredits uint64, renewalRequired, topupAllowed bool, status string, createdAt, updatedAt time.Time) (*Plan, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}

	ut := UserType(userType)
	if !ut.IsValid() {
		return nil, fmt.Errorf("invalid user type: %s", userType)
	}

	ps := PlanStatus(status)
	if !ps.IsValid() {
		return nil, fmt.Errorf("invalid plan status: %s", status)
	}

	return &Plan{
		id:              planID,
		sid:             sid,
		planName:        planName,
		userType:        ut,
		monthlyFee:      monthlyFee,
		defaultCredits:  defaultCredits,
		renewalRequired: renewalRequired,
		topupAllowed:    topupAllowed,
		status:          ps,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// DeriveCredits converts a monthly fee to its credit allowance at the given
// rate, rounding down. A zero rate falls back to the default.
func DeriveCredits(monthlyFee, creditRate uint64) uint64 {
	if creditRate == 0 {
		creditRate = DefaultCreditRate
	}
	return monthlyFee / creditRate
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(planID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = planID
	return nil
}

func (p *Plan) SID() string {
	return p.sid
}

func (p *Plan) PlanName() string {
	return p.planName
}

func (p *Plan) UserType() UserType {
	return p.userType
}

func (p *Plan) MonthlyFee() uint64 {
	return p.monthlyFee
}

func (p *Plan) DefaultCredits() uint64 {
	return p.defaultCredits
}

func (p *Plan) RenewalRequired() bool {
	return p.renewalRequired
}

func (p *Plan) TopupAllowed() bool {
	return p.topupAllowed
}

func (p *Plan) Status() PlanStatus {
	return p.status
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// UpdateDetails replaces the editable fields and re-derives the credit
// allowance from the new fee.
func (p *Plan) UpdateDetails(planName string, userType UserType, monthlyFee uint64, renewalRequired, topupAllowed bool, creditRate uint64) error {
	planName = strings.TrimSpace(planName)
	if planName == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(planName) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}
	if !userType.IsValid() {
		return fmt.Errorf("invalid user type: %s", userType)
	}
	if monthlyFee == 0 {
		return fmt.Errorf("monthly fee must be greater than zero")
	}

	p.planName = planName
	p.userType = userType
	p.monthlyFee = monthlyFee
	p.defaultCredits = DeriveCredits(monthlyFee, creditRate)
	p.renewalRequired = renewalRequired
	p.topupAllowed = topupAllowed
	p.updatedAt = time.Now()
	return nil
}

func (p *Plan) Activate() {
	if p.status == PlanStatusActive {
		return
	}
	p.status = PlanStatusActive
	p.updatedAt = time.Now()
}

func (p *Plan) Deactivate() {
	if p.status == PlanStatusInactive {
		return
	}
	p.status = PlanStatusInactive
	p.updatedAt = time.Now()
}

func (p *Plan) IsActive() bool {
	return p.status == PlanStatusActive
}
