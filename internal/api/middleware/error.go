package middleware

import (
	"net/http"

	"coal-benchmark/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics into a JSON error envelope. The calculation
// core never fails by contract; this guards the I/O layers around it.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}
