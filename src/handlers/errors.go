package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/response"
	"github.com/freelancenexus/nexus-go/src/services"
)

// writeServiceError maps service sentinels onto HTTP status codes.
// Missing resources are 404, uniqueness clashes 409, state and input
// violations 400. Anything unmapped is a 500.
func writeServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrProposalNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrPortfolioItemNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrTransactionNotFound):
		status = http.StatusNotFound

	case errors.Is(err, services.ErrDuplicateProposal),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrProfileExists),
		errors.Is(err, services.ErrAlreadyRated):
		status = http.StatusConflict

	case errors.Is(err, services.ErrProjectNotOpen),
		errors.Is(err, services.ErrInvalidProjectState),
		errors.Is(err, services.ErrProjectNotDeletable),
		errors.Is(err, services.ErrProposalNotPending),
		errors.Is(err, services.ErrNotRefundable),
		errors.Is(err, services.ErrInvalidBudgetRange),
		errors.Is(err, services.ErrDeadlineInPast),
		errors.Is(err, services.ErrInvalidUPIID):
		status = http.StatusBadRequest

	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized

	case errors.Is(err, services.ErrUserInactive):
		status = http.StatusForbidden
	}

	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
