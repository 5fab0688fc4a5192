package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"guest-admin/services"
	"guest-admin/utils"
	"guest-admin/validation"
)

type dashboardQuery struct {
	Goal float64 `form:"goal" binding:"omitempty,gt=0"`
	AsOf string  `form:"as_of" binding:"omitempty,isodate"`
}

type settingsRequest struct {
	SalesGoal *float64 `json:"sales_goal" binding:"required"`
}

type DashboardController struct {
	DashboardSvc *services.DashboardService
	SettingsSvc  *services.SettingsService
}

func NewDashboardController(dashboard *services.DashboardService, settings *services.SettingsService) *DashboardController {
	return &DashboardController{DashboardSvc: dashboard, SettingsSvc: settings}
}

// GET /api/dashboard?goal=&as_of=
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	var q dashboardQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		badRequest(ctx, err)
		return
	}
	now := time.Now()
	if q.AsOf != "" {
		if d, ok := validation.ParseDate(q.AsOf); ok {
			now = d
		}
	}

	summary, err := c.DashboardSvc.Summary(ctx.Request.Context(), now, q.Goal)
	if err != nil {
		respondError(ctx, "dashboard summary", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, summary)
}

// GET /api/settings
func (c *DashboardController) GetSettings(ctx *gin.Context) {
	setting, err := c.SettingsSvc.Get(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "get settings", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, setting)
}

// PUT /api/settings
func (c *DashboardController) UpdateSettings(ctx *gin.Context) {
	var req settingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	setting, err := c.SettingsSvc.UpdateSalesGoal(ctx.Request.Context(), *req.SalesGoal)
	if err != nil {
		respondError(ctx, "update settings", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, setting)
}
