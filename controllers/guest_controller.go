package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest-admin/models"
	"guest-admin/services"
	"guest-admin/utils"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// GET /api/guests?q=
func (c *GuestController) GetGuests(ctx *gin.Context) {
	guests, err := c.GuestSvc.List(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		respondError(ctx, "list guests", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, guests)
}

// GET /api/guests/:id
func (c *GuestController) GetGuest(ctx *gin.Context) {
	guest, err := c.GuestSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "get guest", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, guest)
}

// GET /api/guests/:id/detail
func (c *GuestController) GetGuestDetail(ctx *gin.Context) {
	detail, err := c.GuestSvc.Detail(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "guest detail", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, detail)
}

// POST /api/guests
func (c *GuestController) CreateGuest(ctx *gin.Context) {
	var guest models.Guest
	if err := ctx.ShouldBindJSON(&guest); err != nil {
		badRequest(ctx, err)
		return
	}
	if err := c.GuestSvc.Create(ctx.Request.Context(), &guest); err != nil {
		respondError(ctx, "create guest", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, guest)
}

// PUT /api/guests/:id
func (c *GuestController) UpdateGuest(ctx *gin.Context) {
	var in models.Guest
	if err := ctx.ShouldBindJSON(&in); err != nil {
		badRequest(ctx, err)
		return
	}
	guest, err := c.GuestSvc.Update(ctx.Request.Context(), ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, "update guest", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, guest)
}

// DELETE /api/guests/:id
func (c *GuestController) DeleteGuest(ctx *gin.Context) {
	if err := c.GuestSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, "delete guest", err)
		return
	}
	utils.JSONMessage(ctx, http.StatusOK, "guest deleted")
}
