package middleware

import (
	"net/http"

	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	ctxClaims = "claims"
	ctxToken  = "token"
)

// RequireAuth ตรวจ Bearer JWT, role และ blacklist แล้วแนบ claims ไว้ใน context
func RequireAuth(tokens *services.TokenService, blacklist *services.BlacklistService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := utils.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.JSONAbort(c, http.StatusUnauthorized, "missing or invalid Authorization header")
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			utils.JSONAbort(c, http.StatusUnauthorized, err.Error())
			return
		}
		if role != "" && claims.Role != role {
			utils.JSONAbort(c, http.StatusForbidden, "forbidden")
			return
		}
		if blacklist != nil {
			revoked, err := blacklist.IsRevoked(c.Request.Context(), raw)
			if err != nil {
				utils.JSONAbort(c, http.StatusInternalServerError, err.Error())
				return
			}
			if revoked {
				utils.JSONAbort(c, http.StatusUnauthorized, "token revoked")
				return
			}
		}

		c.Set(ctxClaims, claims)
		c.Set(ctxToken, raw)
		c.Set("user_id", claims.Sub)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*services.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.Claims)
	return claims, ok
}

func TokenFrom(c *gin.Context) string {
	return c.GetString(ctxToken)
}
