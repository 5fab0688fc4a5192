package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"guest-admin/config"
	"guest-admin/services"
	"guest-admin/utils"
)

// respondError maps service errors onto HTTP statuses. Anything unexpected
// is logged and reported as a generic 500.
func respondError(ctx *gin.Context, op string, err error) {
	if verrs, ok := services.ValidationErrors(err); ok {
		utils.JSONValidationError(ctx, verrs)
		return
	}

	switch {
	case errors.Is(err, services.ErrGuestNotFound):
		utils.JSONError(ctx, http.StatusNotFound, "guest not found")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(ctx, http.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrUnknownItemType):
		utils.JSONError(ctx, http.StatusBadRequest, err.Error())
	default:
		config.Log.Error(op, zap.String("path", ctx.FullPath()), zap.Error(err))
		_ = ctx.Error(err)
		utils.JSONError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func badRequest(ctx *gin.Context, err error) {
	utils.JSONError(ctx, http.StatusBadRequest, "invalid request: "+err.Error())
}
