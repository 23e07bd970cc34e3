package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-product-select/internal/core/auth"
	resp "go-product-select/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 只认 access token；requireRole 非空时再校验角色
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Fail("missing token"))
			return
		}
		claims, err := j.ParseKind(strings.TrimPrefix(ah, "Bearer "), auth.KindAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Fail("invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Fail("forbidden"))
			return
		}
		uid, err := strconv.ParseUint(claims.UID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Fail("invalid token"))
			return
		}
		c.Set(KeyUserID, uint(uid))
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
