package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest-admin/models"
	"guest-admin/services"
	"guest-admin/utils"
)

type SaleController struct {
	SaleSvc *services.SaleService
}

func NewSaleController(svc *services.SaleService) *SaleController {
	return &SaleController{SaleSvc: svc}
}

// GET /api/guests/:id/sales
func (c *SaleController) GetGuestSales(ctx *gin.Context) {
	sales, err := c.SaleSvc.ListByGuest(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "list sales", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, sales)
}

// GET /api/sales/:id
func (c *SaleController) GetSale(ctx *gin.Context) {
	sale, err := c.SaleSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "get sale", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, sale)
}

// POST /api/guests/:id/sales
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var sale models.Sale
	if err := ctx.ShouldBindJSON(&sale); err != nil {
		badRequest(ctx, err)
		return
	}
	if err := c.SaleSvc.Create(ctx.Request.Context(), ctx.Param("id"), &sale); err != nil {
		respondError(ctx, "create sale", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, sale)
}

// PUT /api/sales/:id
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	var in models.Sale
	if err := ctx.ShouldBindJSON(&in); err != nil {
		badRequest(ctx, err)
		return
	}
	sale, err := c.SaleSvc.Update(ctx.Request.Context(), ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, "update sale", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, sale)
}

// DELETE /api/sales/:id
func (c *SaleController) DeleteSale(ctx *gin.Context) {
	if err := c.SaleSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, "delete sale", err)
		return
	}
	utils.JSONMessage(ctx, http.StatusOK, "sale deleted")
}
