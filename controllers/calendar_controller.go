package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"guest-admin/services"
	"guest-admin/utils"
)

type calendarQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

type CalendarController struct {
	CalendarSvc *services.CalendarService
}

func NewCalendarController(svc *services.CalendarService) *CalendarController {
	return &CalendarController{CalendarSvc: svc}
}

// GET /api/calendar?year=&month=
// Without parameters the current month is returned.
func (c *CalendarController) GetMonth(ctx *gin.Context) {
	var q calendarQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		badRequest(ctx, err)
		return
	}
	now := time.Now()
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}

	month, err := c.CalendarSvc.Month(ctx.Request.Context(), q.Year, time.Month(q.Month))
	if err != nil {
		respondError(ctx, "calendar month", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, month)
}

// PATCH /api/calendar/items/:type/:id
func (c *CalendarController) UpdateItem(ctx *gin.Context) {
	var patch services.ItemPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}
	item, err := c.CalendarSvc.UpdateItem(ctx.Request.Context(), ctx.Param("type"), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, "update calendar item", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, item)
}

// DELETE /api/calendar/items/:type/:id
func (c *CalendarController) DeleteItem(ctx *gin.Context) {
	if err := c.CalendarSvc.DeleteItem(ctx.Request.Context(), ctx.Param("type"), ctx.Param("id")); err != nil {
		respondError(ctx, "delete calendar item", err)
		return
	}
	utils.JSONMessage(ctx, http.StatusOK, "item deleted")
}
