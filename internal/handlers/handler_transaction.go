package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/dto"
	"github.com/SscSPs/benefit_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// transactionHandler handles money movement and transaction queries.
type transactionHandler struct {
	banking      portssvc.BankingSvcFacade
	transactions portssvc.TransactionReaderSvc
	reporting    portssvc.ReportingSvc
}

func newTransactionHandler(banking portssvc.BankingSvcFacade, transactions portssvc.TransactionReaderSvc, reporting portssvc.ReportingSvc) *transactionHandler {
	return &transactionHandler{banking: banking, transactions: transactions, reporting: reporting}
}

// registerTransactionRoutes registers deposit, withdrawal, transfer and history routes.
func registerTransactionRoutes(rg *gin.RouterGroup, banking portssvc.BankingSvcFacade, transactions portssvc.TransactionReaderSvc, reporting portssvc.ReportingSvc) {
	h := newTransactionHandler(banking, transactions, reporting)

	accounts := rg.Group("/accounts/:accountNumber")
	{
		accounts.POST("/deposits", h.deposit)
		accounts.POST("/withdrawals", h.withdraw)
		accounts.POST("/fees", h.chargeFee)
		accounts.POST("/transfers", h.transfer)
		accounts.GET("/history", h.history)
		accounts.GET("/transactions", h.listTransactions)
		accounts.GET("/statistics", h.statistics)
		accounts.GET("/statement", h.statement)
	}

	txns := rg.Group("/transactions")
	{
		txns.GET("/:transactionID", h.getTransaction)
		txns.POST("/:transactionID/cancel", h.cancelTransaction)
	}
}

type moneyOp func(c *gin.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error)

// recordMoney binds a MoneyRequest and runs op for the path account.
func (h *transactionHandler) recordMoney(c *gin.Context, op moneyOp, what string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	var req dto.MoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, what+" request")
		return
	}

	logger = logger.With(slog.String("account_number", accountNumber), slog.String("amount", req.Amount.String()))
	txn, err := op(c, accountNumber, req.Amount, req.Description)
	if err != nil {
		respondError(c, logger, err, "Failed to record "+what)
		return
	}
	logger.Info(what+" recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, txn)
}

// deposit godoc
// @Summary Deposit money
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   deposit body dto.MoneyRequest true "Deposit"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Account closed"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/deposits [post]
func (h *transactionHandler) deposit(c *gin.Context) {
	h.recordMoney(c, func(c *gin.Context, num string, amount decimal.Decimal, desc string) (*domain.Transaction, error) {
		return h.banking.Deposit(c.Request.Context(), num, amount, desc)
	}, "Deposit")
}

// withdraw godoc
// @Summary Withdraw money
// @Description Withdraws through the account's policies; overdraft protection may cover a shortfall
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   withdrawal body dto.MoneyRequest true "Withdrawal"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds or account closed"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/withdrawals [post]
func (h *transactionHandler) withdraw(c *gin.Context) {
	h.recordMoney(c, func(c *gin.Context, num string, amount decimal.Decimal, desc string) (*domain.Transaction, error) {
		return h.banking.Withdraw(c.Request.Context(), num, amount, desc)
	}, "Withdrawal")
}

// chargeFee godoc
// @Summary Charge a fee
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   fee body dto.MoneyRequest true "Fee"
// @Success 201 {object} dto.TransactionResponse
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/fees [post]
func (h *transactionHandler) chargeFee(c *gin.Context) {
	h.recordMoney(c, func(c *gin.Context, num string, amount decimal.Decimal, desc string) (*domain.Transaction, error) {
		return h.banking.ChargeFee(c.Request.Context(), num, amount, desc)
	}, "Fee")
}

// transfer godoc
// @Summary Transfer money
// @Description Records a withdrawal on the path account and a deposit on the target. The legs are not atomic.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Source account number"
// @Param   transfer body dto.TransferRequest true "Transfer"
// @Success 201 {object} domain.TransferResult
// @Failure 400 {object} map[string]string "Invalid amount or same account"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/transfers [post]
func (h *transactionHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Param("accountNumber")

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "Transfer request")
		return
	}

	logger = logger.With(slog.String("from", from), slog.String("to", req.ToAccountNumber))
	res, err := h.banking.Transfer(c.Request.Context(), from, req.ToAccountNumber, req.Amount, req.Description)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// history godoc
// @Summary Full transaction history
// @Description Returns every recorded transaction in insertion order plus the balance replayed from them
// @Tags transactions
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.HistoryResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/history [get]
func (h *transactionHandler) history(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")
	logger = logger.With(slog.String("account_number", accountNumber))

	txns, err := h.banking.GetTransactionHistory(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve history")
		return
	}
	computed, err := h.transactions.ComputedBalance(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, logger, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.HistoryResponse{AccountNumber: accountNumber, Transactions: txns, ComputedBalance: computed})
}

// listTransactions godoc
// @Summary List transactions (paged)
// @Description Lists an account's transactions newest first using cursor tokens
// @Tags transactions
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} domain.TransactionPage
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "ListTransactions query")
		return
	}

	page, err := h.transactions.ListTransactions(c.Request.Context(), accountNumber, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger.With(slog.String("account_number", accountNumber)), err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// statistics godoc
// @Summary Transaction statistics
// @Tags transactions
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} domain.TransactionStatistics
// @Security BearerAuth
// @Router /accounts/{accountNumber}/statistics [get]
func (h *transactionHandler) statistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	stats, err := h.transactions.Statistics(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, logger.With(slog.String("account_number", accountNumber)), err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// statement godoc
// @Summary Account statement
// @Description Transactions within an inclusive date range with running balances, newest first. Defaults to the last 30 days.
// @Tags reporting
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.Statement
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountNumber}/statement [get]
func (h *transactionHandler) statement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "Statement query")
		return
	}

	from, to := params.Range(time.Now())
	stmt, err := h.reporting.Statement(c.Request.Context(), accountNumber, from, to)
	if err != nil {
		respondError(c, logger.With(slog.String("account_number", accountNumber)), err, "Failed to generate statement")
		return
	}
	c.JSON(http.StatusOK, stmt)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("transactionID")

	txn, err := h.transactions.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.String("transaction_id", id)), err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// cancelTransaction godoc
// @Summary Cancel a transaction
// @Description Marks a completed transaction cancelled. The account balance is not changed.
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction cannot be cancelled"
// @Security BearerAuth
// @Router /transactions/{transactionID}/cancel [post]
func (h *transactionHandler) cancelTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", id))

	txn, err := h.banking.CancelTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to cancel transaction")
		return
	}
	logger.Info("Transaction cancelled")
	c.JSON(http.StatusOK, txn)
}
