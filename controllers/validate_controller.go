package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest-admin/models"
	"guest-admin/utils"
	"guest-admin/validation"
)

// POST /api/validate/:entity
// Runs the entity validator on the body without storing anything.
func ValidateEntity(ctx *gin.Context) {
	var (
		result validation.Result
		err    error
	)

	switch ctx.Param("entity") {
	case "guest":
		var g models.Guest
		if err = ctx.ShouldBindJSON(&g); err == nil {
			result = validation.ValidateGuest(g)
		}
	case "appointment":
		var a models.Appointment
		if err = ctx.ShouldBindJSON(&a); err == nil {
			result = validation.ValidateAppointment(a)
		}
	case "reservation":
		var r models.Reservation
		if err = ctx.ShouldBindJSON(&r); err == nil {
			result = validation.ValidateReservation(r)
		}
	case "sale":
		var s models.Sale
		if err = ctx.ShouldBindJSON(&s); err == nil {
			result = validation.ValidateSale(s)
		}
	case "event":
		var e models.GuestEvent
		if err = ctx.ShouldBindJSON(&e); err == nil {
			result = validation.ValidateEvent(e)
		}
	default:
		utils.JSONError(ctx, http.StatusNotFound, "unknown entity "+ctx.Param("entity"))
		return
	}

	if err != nil {
		badRequest(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, result)
}
