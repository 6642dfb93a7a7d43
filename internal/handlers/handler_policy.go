package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/dto"
	"github.com/SscSPs/benefit_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// policyHandler exposes the operations account policies add.
type policyHandler struct {
	policies portssvc.PolicySvc
}

func registerPolicyRoutes(rg *gin.RouterGroup, policies portssvc.PolicySvc) {
	h := &policyHandler{policies: policies}

	acct := rg.Group("/accounts/:accountNumber")
	{
		acct.POST("/rewards/redeem", h.redeemPoints)
		acct.POST("/overdraft/repay", h.repayOverdraft)
		acct.POST("/insurance/claims", h.claimInsurance)
		acct.POST("/currency/deposits", h.depositInCurrency)
		acct.GET("/currency/balance", h.balanceInCurrency)
		acct.PUT("/currency/rates", h.updateExchangeRate)
		acct.POST("/tax/savings", h.calculateTaxSavings)
		acct.POST("/priority/free-transactions", h.useFreeTransaction)
		acct.POST("/priority/reset", h.resetMonthlyBenefits)
		acct.GET("/priority/status", h.priorityStatus)
	}
}

func policyLogger(c *gin.Context) (*slog.Logger, string) {
	accountNumber := c.Param("accountNumber")
	return middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_number", accountNumber)), accountNumber
}

// redeemPoints godoc
// @Summary Redeem reward points
// @Description Deposits the cash value of the points (100 points per unit) and records it as a deposit
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   redemption body dto.RedeemPointsRequest true "Points"
// @Success 201 {object} dto.TransactionResponse
// @Failure 422 {object} map[string]string "Not enough points or policy not applied"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/rewards/redeem [post]
func (h *policyHandler) redeemPoints(c *gin.Context) {
	logger, num := policyLogger(c)
	var req dto.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "RedeemPoints request")
		return
	}
	txn, err := h.policies.RedeemPoints(c.Request.Context(), num, req.Points)
	if err != nil {
		respondError(c, logger, err, "Failed to redeem points")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// repayOverdraft godoc
// @Summary Repay used overdraft
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   repayment body dto.AmountRequest true "Repayment"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Repayment exceeds used overdraft"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/overdraft/repay [post]
func (h *policyHandler) repayOverdraft(c *gin.Context) {
	logger, num := policyLogger(c)
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "RepayOverdraft request")
		return
	}
	snap, err := h.policies.RepayOverdraft(c.Request.Context(), num, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to repay overdraft")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// claimInsurance godoc
// @Summary Claim insurance
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   claim body dto.AmountRequest true "Claim amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 422 {object} map[string]string "Claim exceeds coverage or insurance inactive"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/insurance/claims [post]
func (h *policyHandler) claimInsurance(c *gin.Context) {
	logger, num := policyLogger(c)
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "ClaimInsurance request")
		return
	}
	txn, err := h.policies.ClaimInsurance(c.Request.Context(), num, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to claim insurance")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// depositInCurrency godoc
// @Summary Deposit foreign currency
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   deposit body dto.CurrencyDepositRequest true "Amount and currency"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/currency/deposits [post]
func (h *policyHandler) depositInCurrency(c *gin.Context) {
	logger, num := policyLogger(c)
	var req dto.CurrencyDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "CurrencyDeposit request")
		return
	}
	txn, err := h.policies.DepositInCurrency(c.Request.Context(), num, req.Amount, req.Currency)
	if err != nil {
		respondError(c, logger, err, "Failed to deposit currency")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// balanceInCurrency godoc
// @Summary Balance in another currency
// @Tags policies
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   currency query string true "Currency code"
// @Success 200 {object} dto.CurrencyBalanceResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/currency/balance [get]
func (h *policyHandler) balanceInCurrency(c *gin.Context) {
	logger, num := policyLogger(c)
	currency := strings.ToUpper(c.Query("currency"))
	if currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency query parameter is required"})
		return
	}
	balance, err := h.policies.BalanceInCurrency(c.Request.Context(), num, currency)
	if err != nil {
		respondError(c, logger, err, "Failed to convert balance")
		return
	}
	c.JSON(http.StatusOK, dto.CurrencyBalanceResponse{AccountNumber: num, Currency: currency, Balance: balance})
}

// updateExchangeRate godoc
// @Summary Set an exchange rate
// @Description Sets the rate for one currency on this account only
// @Tags policies
// @Accept  json
// @Param   accountNumber path string true "Account number"
// @Param   rate body dto.ExchangeRateRequest true "Rate"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/currency/rates [put]
func (h *policyHandler) updateExchangeRate(c *gin.Context) {
	logger, num := policyLogger(c)
	var req dto.ExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "ExchangeRate request")
		return
	}
	if err := h.policies.UpdateExchangeRate(c.Request.Context(), num, req.Currency, req.Rate); err != nil {
		respondError(c, logger, err, "Failed to update exchange rate")
		return
	}
	c.Status(http.StatusNoContent)
}

// calculateTaxSavings godoc
// @Summary Calculate tax savings
// @Description Computes the saving on a taxable amount and adds it to the account's running total
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   taxable body dto.AmountRequest true "Taxable amount"
// @Success 200 {object} dto.TaxSavingsResponse
// @Security BearerAuth
// @Router /accounts/{accountNumber}/tax/savings [post]
func (h *policyHandler) calculateTaxSavings(c *gin.Context) {
	logger, num := policyLogger(c)
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "TaxSavings request")
		return
	}
	saving, err := h.policies.CalculateTaxSavings(c.Request.Context(), num, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate tax savings")
		return
	}
	c.JSON(http.StatusOK, dto.TaxSavingsResponse{AccountNumber: num, TaxableAmount: req.Amount, Savings: saving})
}

// useFreeTransaction godoc
// @Summary Use a free transaction
// @Tags policies
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.FreeTransactionResponse
// @Security BearerAuth
// @Router /accounts/{accountNumber}/priority/free-transactions [post]
func (h *policyHandler) useFreeTransaction(c *gin.Context) {
	logger, num := policyLogger(c)
	used, err := h.policies.UseFreeTransaction(c.Request.Context(), num)
	if err != nil {
		respondError(c, logger, err, "Failed to use free transaction")
		return
	}
	c.JSON(http.StatusOK, dto.FreeTransactionResponse{AccountNumber: num, Used: used})
}

// resetMonthlyBenefits godoc
// @Summary Reset monthly priority benefits
// @Tags policies
// @Param   accountNumber path string true "Account number"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/priority/reset [post]
func (h *policyHandler) resetMonthlyBenefits(c *gin.Context) {
	logger, num := policyLogger(c)
	if err := h.policies.ResetMonthlyBenefits(c.Request.Context(), num); err != nil {
		respondError(c, logger, err, "Failed to reset monthly benefits")
		return
	}
	c.Status(http.StatusNoContent)
}

// priorityStatus godoc
// @Summary Priority banking status
// @Tags policies
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.PriorityStatusResponse
// @Security BearerAuth
// @Router /accounts/{accountNumber}/priority/status [get]
func (h *policyHandler) priorityStatus(c *gin.Context) {
	logger, num := policyLogger(c)
	status, err := h.policies.PriorityStatus(c.Request.Context(), num)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve priority status")
		return
	}
	c.JSON(http.StatusOK, dto.PriorityStatusResponse{AccountNumber: num, Status: status})
}
