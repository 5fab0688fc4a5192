package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest-admin/models"
	"guest-admin/services"
	"guest-admin/utils"
)

type AppointmentController struct {
	AppointmentSvc *services.AppointmentService
}

func NewAppointmentController(svc *services.AppointmentService) *AppointmentController {
	return &AppointmentController{AppointmentSvc: svc}
}

// GET /api/guests/:id/appointments
func (c *AppointmentController) GetGuestAppointments(ctx *gin.Context) {
	appointments, err := c.AppointmentSvc.ListByGuest(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "list appointments", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, appointments)
}

// GET /api/appointments/:id
func (c *AppointmentController) GetAppointment(ctx *gin.Context) {
	appointment, err := c.AppointmentSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "get appointment", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, appointment)
}

// POST /api/guests/:id/appointments
func (c *AppointmentController) CreateAppointment(ctx *gin.Context) {
	var appointment models.Appointment
	if err := ctx.ShouldBindJSON(&appointment); err != nil {
		badRequest(ctx, err)
		return
	}
	if err := c.AppointmentSvc.Create(ctx.Request.Context(), ctx.Param("id"), &appointment); err != nil {
		respondError(ctx, "create appointment", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, appointment)
}

// PUT /api/appointments/:id
func (c *AppointmentController) UpdateAppointment(ctx *gin.Context) {
	var in models.Appointment
	if err := ctx.ShouldBindJSON(&in); err != nil {
		badRequest(ctx, err)
		return
	}
	appointment, err := c.AppointmentSvc.Update(ctx.Request.Context(), ctx.Param("id"), in)
	c.respond(ctx, "update appointment", appointment, err)
}

// POST /api/appointments/:id/cancel
func (c *AppointmentController) CancelAppointment(ctx *gin.Context) {
	appointment, err := c.AppointmentSvc.Cancel(ctx.Request.Context(), ctx.Param("id"))
	c.respond(ctx, "cancel appointment", appointment, err)
}

// DELETE /api/appointments/:id
func (c *AppointmentController) DeleteAppointment(ctx *gin.Context) {
	if err := c.AppointmentSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, "delete appointment", err)
		return
	}
	utils.JSONMessage(ctx, http.StatusOK, "appointment deleted")
}

func (c *AppointmentController) respond(ctx *gin.Context, op string, appointment *models.Appointment, err error) {
	// ErrSaleSyncFailed ends up as a 500 even though the appointment row
	// was already written.
	if err != nil {
		respondError(ctx, op, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, appointment)
}
