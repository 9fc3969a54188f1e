package handlers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"github.com/rasu25115/pickme/internal/domain/catalog"
	"github.com/rasu25115/pickme/internal/domain/credential"
	"github.com/rasu25115/pickme/internal/domain/rateplan"
	"github.com/rasu25115/pickme/internal/shared/errors"
	"github.com/rasu25115/pickme/internal/shared/utils"
)

// respondError translates domain sentinel errors into typed API errors
// before rendering, so not-found and rule violations don't surface as 500s.
func respondError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, catalog.ErrAPINotFound):
		err = errors.NewNotFoundError("api not found")
	case stderrors.Is(err, credential.ErrKeyNotFound):
		err = errors.NewNotFoundError("api key not found")
	case stderrors.Is(err, rateplan.ErrPlanNotFound):
		err = errors.NewNotFoundError("rate plan not found")
	case stderrors.Is(err, rateplan.ErrPricingNotOverridable):
		err = errors.NewValidationError("pricing can only be overridden for pro apis")
	}
	utils.ErrorResponseWithError(c, err)
}

// respondBindError renders a request body or query binding failure.
func respondBindError(c *gin.Context, err error) {
	utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request: "+utils.BindingErrorMessage(err)))
}
