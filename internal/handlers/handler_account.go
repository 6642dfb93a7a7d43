package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/dto"
	"github.com/SscSPs/benefit_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to account lifecycle.
type accountHandler struct {
	banking portssvc.BankingSvcFacade
}

func newAccountHandler(banking portssvc.BankingSvcFacade) *accountHandler {
	return &accountHandler{banking: banking}
}

// registerAccountRoutes registers account lifecycle routes. Customer-scoped
// routes hang off the customers group.
func registerAccountRoutes(rg *gin.RouterGroup, customers *gin.RouterGroup, banking portssvc.BankingSvcFacade) {
	h := newAccountHandler(banking)

	customers.POST("/:customerID/accounts", h.openAccount)
	customers.GET("/:customerID/accounts", h.listCustomerAccounts)
	customers.GET("/:customerID/accounts/find", h.findAccount)
	customers.POST("/:customerID/safety-investments", h.investWithSafetyMode)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/:accountNumber", h.getAccount)
		accounts.DELETE("/:accountNumber", h.closeAccount)
		accounts.POST("/:accountNumber/returns", h.applyReturns)
	}
}

// openAccount godoc
// @Summary Open a new account
// @Description Opens a savings, checking or investment account with the benefits its type and initial deposit qualify for. Unknown customers are created on the fly.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Param   account body dto.OpenAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to open account"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts [post]
func (h *accountHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "OpenAccount request")
		return
	}

	logger = logger.With(slog.String("customer_id", customerID))
	logger.Info("Received request to open account", slog.String("account_type", req.AccountType), slog.String("initial_deposit", req.InitialDeposit.String()))

	snap, err := h.banking.OpenAccount(c.Request.Context(), customerID, req.Kind(), req.InitialDeposit)
	if err != nil {
		respondError(c, logger, err, "Failed to open account")
		return
	}

	logger.Info("Account opened successfully", slog.String("account_number", snap.AccountNumber))
	c.JSON(http.StatusCreated, snap)
}

// investWithSafetyMode godoc
// @Summary Open a safety-mode investment
// @Description Opens an investment account with insurance and tax optimization and funds it
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Param   investment body dto.SafetyInvestmentRequest true "Investment amount"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to open safety investment"
// @Security BearerAuth
// @Router /customers/{customerID}/safety-investments [post]
func (h *accountHandler) investWithSafetyMode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	var req dto.SafetyInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "SafetyInvestment request")
		return
	}

	snap, err := h.banking.InvestWithSafetyMode(c.Request.Context(), customerID, req.Amount)
	if err != nil {
		respondError(c, logger.With(slog.String("customer_id", customerID)), err, "Failed to open safety investment")
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// getAccount godoc
// @Summary Get an account
// @Description Retrieves balance, description and policy details of an open account
// @Tags accounts
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{accountNumber} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	snap, err := h.banking.GetAccount(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, logger.With(slog.String("account_number", accountNumber)), err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// closeAccount godoc
// @Summary Close an account
// @Description Cancels insurance, closes the account and removes it from the registry. Its transaction history is kept.
// @Tags accounts
// @Param   accountNumber path string true "Account number"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to close account"
// @Security BearerAuth
// @Router /accounts/{accountNumber} [delete]
func (h *accountHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")
	logger = logger.With(slog.String("account_number", accountNumber))
	logger.Info("Received request to close account")

	if err := h.banking.CloseAccount(c.Request.Context(), accountNumber); err != nil {
		respondError(c, logger, err, "Failed to close account")
		return
	}
	c.Status(http.StatusNoContent)
}

// applyReturns godoc
// @Summary Apply investment returns
// @Description Credits (or debits, when negative) investment returns directly on an investment account. No transaction is recorded.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   returns body dto.ApplyReturnsRequest true "Return amount"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Not an investment account"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/returns [post]
func (h *accountHandler) applyReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	var req dto.ApplyReturnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "ApplyReturns request")
		return
	}

	snap, err := h.banking.ApplyInvestmentReturns(c.Request.Context(), accountNumber, req.Amount)
	if err != nil {
		respondError(c, logger.With(slog.String("account_number", accountNumber)), err, "Failed to apply investment returns")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// listCustomerAccounts godoc
// @Summary List a customer's accounts
// @Tags accounts
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts [get]
func (h *accountHandler) listCustomerAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	snaps, err := h.banking.CustomerAccounts(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger.With(slog.String("customer_id", customerID)), err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{CustomerID: customerID, Accounts: snaps})
}

// findAccount godoc
// @Summary Find an account by type
// @Description Returns the first account whose type contains the query, case-insensitively. Without a type the customer's first account is returned.
// @Tags accounts
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Param   type query string false "Account type, e.g. savings"
// @Success 200 {object} dto.FindAccountResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts/find [get]
func (h *accountHandler) findAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	var params dto.FindAccountParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "FindAccount query")
		return
	}

	var (
		num   string
		found bool
		err   error
	)
	if params.Type == "" {
		num, found, err = h.banking.FindFirstAccountForCustomer(c.Request.Context(), customerID)
	} else {
		num, found, err = h.banking.FindAccountNumberByType(c.Request.Context(), customerID, params.Type)
	}
	if err != nil {
		respondError(c, logger.With(slog.String("customer_id", customerID)), err, "Failed to find account")
		return
	}
	c.JSON(http.StatusOK, dto.FindAccountResponse{AccountNumber: num, Found: found})
}
