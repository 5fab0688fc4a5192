package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest-admin/models"
	"guest-admin/services"
	"guest-admin/utils"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// GET /api/guests/:id/reservations
func (c *ReservationController) GetGuestReservations(ctx *gin.Context) {
	reservations, err := c.ReservationSvc.ListByGuest(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "list reservations", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, reservations)
}

// GET /api/reservations/:id
func (c *ReservationController) GetReservation(ctx *gin.Context) {
	reservation, err := c.ReservationSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "get reservation", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, reservation)
}

// POST /api/guests/:id/reservations
func (c *ReservationController) CreateReservation(ctx *gin.Context) {
	var reservation models.Reservation
	if err := ctx.ShouldBindJSON(&reservation); err != nil {
		badRequest(ctx, err)
		return
	}
	if err := c.ReservationSvc.Create(ctx.Request.Context(), ctx.Param("id"), &reservation); err != nil {
		respondError(ctx, "create reservation", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, reservation)
}

// PUT /api/reservations/:id
func (c *ReservationController) UpdateReservation(ctx *gin.Context) {
	var in models.Reservation
	if err := ctx.ShouldBindJSON(&in); err != nil {
		badRequest(ctx, err)
		return
	}
	reservation, err := c.ReservationSvc.Update(ctx.Request.Context(), ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, "update reservation", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, reservation)
}

// DELETE /api/reservations/:id
func (c *ReservationController) DeleteReservation(ctx *gin.Context) {
	if err := c.ReservationSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, "delete reservation", err)
		return
	}
	utils.JSONMessage(ctx, http.StatusOK, "reservation deleted")
}
