package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/benefit_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/dto"
	"github.com/SscSPs/benefit_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles the customer directory, portfolios and notifications.
type customerHandler struct {
	customers portssvc.CustomerSvcFacade
	notifier  portssvc.NotificationSvcFacade
	reporting portssvc.ReportingSvc
}

// registerCustomerRoutes registers customer routes and returns the group so
// customer-scoped account routes can join it.
func registerCustomerRoutes(rg *gin.RouterGroup, customers portssvc.CustomerSvcFacade, notifier portssvc.NotificationSvcFacade, reporting portssvc.ReportingSvc) *gin.RouterGroup {
	h := &customerHandler{customers: customers, notifier: notifier, reporting: reporting}

	group := rg.Group("/customers")
	{
		group.POST("", h.createCustomer)
		group.GET("", h.listCustomers)
		group.GET("/:customerID", h.getCustomer)
		group.GET("/:customerID/portfolio", h.portfolio)
		group.GET("/:customerID/notifications", h.listNotifications)
		group.POST("/:customerID/notifications/:notificationID/read", h.markNotificationRead)
	}
	return group
}

// createCustomer godoc
// @Summary Register a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Customer already exists"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "CreateCustomer request")
		return
	}
	if callerID, ok := middleware.GetCallerIDFromContext(c); ok {
		req.CreatedBy = callerID
	}

	customer, err := h.customers.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger.With(slog.String("customer_id", req.CustomerID)), err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	customer, err := h.customers.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger.With(slog.String("customer_id", customerID)), err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce  json
// @Success 200 {array} dto.CustomerResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customers, err := h.customers.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// portfolio godoc
// @Summary Customer portfolio
// @Description Total balance of a customer's open accounts with a per-type breakdown
// @Tags reporting
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {object} domain.Portfolio
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customerID}/portfolio [get]
func (h *customerHandler) portfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	p, err := h.reporting.Portfolio(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger.With(slog.String("customer_id", customerID)), err, "Failed to build portfolio")
		return
	}
	c.JSON(http.StatusOK, p)
}

// listNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Param   unread query bool false "Only unread notifications"
// @Success 200 {object} dto.ListNotificationsResponse
// @Security BearerAuth
// @Router /customers/{customerID}/notifications [get]
func (h *customerHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "ListNotifications query")
		return
	}

	var (
		list []domain.Notification
		err  error
	)
	if params.UnreadOnly {
		list, err = h.notifier.Unread(c.Request.Context(), customerID)
	} else {
		list, err = h.notifier.List(c.Request.Context(), customerID)
	}
	if err != nil {
		respondError(c, logger.With(slog.String("customer_id", customerID)), err, "Failed to list notifications")
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	c.JSON(http.StatusOK, dto.ListNotificationsResponse{CustomerID: customerID, Notifications: list})
}

// markNotificationRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Param   customerID path string true "Customer ID"
// @Param   notificationID path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Notification not found"
// @Security BearerAuth
// @Router /customers/{customerID}/notifications/{notificationID}/read [post]
func (h *customerHandler) markNotificationRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")
	id := c.Param("notificationID")

	if err := h.notifier.MarkRead(c.Request.Context(), customerID, id); err != nil {
		respondError(c, logger.With(slog.String("customer_id", customerID), slog.String("notification_id", id)), err, "Failed to mark notification read")
		return
	}
	c.Status(http.StatusNoContent)
}
