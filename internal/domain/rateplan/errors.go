package rateplan

import "errors"

var (
	ErrPlanNotFound          = errors.New("rate plan not found")
	ErrInvalidUserType       = errors.New("invalid user type")
	ErrPricingNotOverridable = errors.New("pricing can only be overridden for pro apis")
)
