package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/benefit_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses maps domain sentinels to HTTP status codes. The first match wins.
var errorStatuses = []errorStatus{
	{apperrors.ErrValidation, http.StatusBadRequest},
	{apperrors.ErrInvalidAmount, http.StatusBadRequest},
	{apperrors.ErrUnknownAccountKind, http.StatusBadRequest},
	{apperrors.ErrSameAccount, http.StatusBadRequest},
	{apperrors.ErrUnsupportedCurrency, http.StatusBadRequest},
	{apperrors.ErrInvalidRepayment, http.StatusBadRequest},

	{apperrors.ErrAccountNotFound, http.StatusNotFound},
	{apperrors.ErrCustomerNotFound, http.StatusNotFound},
	{apperrors.ErrTransactionNotFound, http.StatusNotFound},
	{apperrors.ErrNotFound, http.StatusNotFound},

	{apperrors.ErrDuplicate, http.StatusConflict},
	{apperrors.ErrInvalidStatusTransition, http.StatusConflict},

	{apperrors.ErrAccountClosed, http.StatusUnprocessableEntity},
	{apperrors.ErrInsufficientFunds, http.StatusUnprocessableEntity},
	{apperrors.ErrOverdraftExceeded, http.StatusUnprocessableEntity},
	{apperrors.ErrInsufficientPoints, http.StatusUnprocessableEntity},
	{apperrors.ErrInsuranceInactive, http.StatusUnprocessableEntity},
	{apperrors.ErrClaimExceedsCoverage, http.StatusUnprocessableEntity},
	{apperrors.ErrNotAnInvestmentAccount, http.StatusUnprocessableEntity},
	{apperrors.ErrPolicyNotApplied, http.StatusUnprocessableEntity},
}

// statusFor returns the HTTP status for err, 500 when no sentinel matches.
func statusFor(err error) int {
	for _, m := range errorStatuses {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the error response. Client errors echo the error text;
// server errors only return fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
