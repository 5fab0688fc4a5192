package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest-admin/validation"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "success", "message": message})
}

func JSONError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"status": "error", "message": message})
}

// JSONValidationError reports every failed field at once.
func JSONValidationError(c *gin.Context, errs validation.Errors) {
	if errs == nil {
		errs = validation.Errors{}
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"status":  "error",
		"message": "validation failed",
		"errors":  errs,
	})
}
