package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/benefit_ledger/internal/core/ports/services"
	"github.com/SscSPs/benefit_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Benefit Ledger API v1"})
}

// getBankStats godoc
// @Summary Bank-wide statistics
// @Description Customer, account, asset, transaction and notification totals
// @Tags reporting
// @Produce json
// @Success 200 {object} domain.BankStats
// @Security BearerAuth
// @Router /stats [get]
func getBankStats(reporting portssvc.ReportingSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		stats, err := reporting.BankStats(c.Request.Context())
		if err != nil {
			respondError(c, logger, err, "Failed to compute bank statistics")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func registerHomeRoutes(group *gin.RouterGroup, reporting portssvc.ReportingSvc) {
	group.GET("/", getHome)
	group.GET("/stats", getBankStats(reporting))
}
