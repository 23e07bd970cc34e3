package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "go-product-select/internal/transport/http/response"
)

// SimpleRecovery panic 也按「对外 400」的口径收敛，不暴露 500
func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, resp.Fail("internal error"))
			}
		}()
		c.Next()
	}
}
