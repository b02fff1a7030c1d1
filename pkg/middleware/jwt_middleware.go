package middleware

import (
	"context"
	"net/http"
	"strings"

	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, accountID, role string) (*utils.Principal, error)
}

// BearerToken returns the raw token of an "Authorization: Bearer" header, or "".
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

func JWTAuthMiddleware(tokens *utils.TokenProvider, resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "인증 정보가 없습니다.")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil || claims.TokenType != utils.TokenTypeAccess {
			utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthorized.Message)
			c.Abort()
			return
		}

		principal, err := resolver.ResolvePrincipal(c.Request.Context(), claims.Subject, claims.Role)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set("user_id", principal.ID.String())
		c.Set("Role", principal.Role)
		c.Next()
	}
}

func RoleMiddleware(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("Role")
		for _, r := range allowed {
			if r == role {
				c.Next()
				return
			}
		}
		utils.RespondError(c, http.StatusForbidden, utils.ErrForbiddenUser.Message)
		c.Abort()
	}
}

// GetPrincipal reads the principal stored by JWTAuthMiddleware.
func GetPrincipal(c *gin.Context) (*utils.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*utils.Principal)
	return p, ok
}
