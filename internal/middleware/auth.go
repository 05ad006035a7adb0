package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/elhenawym124-ops/chatai-sub002/pkg/response"
)

const companyIDKey = "company_id"

// Claims is the bearer token payload issued by the back office auth
// service. company_id scopes every AI route to one tenant.
type Claims struct {
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// Auth validates the Bearer token and stores the tenant ID in the gin
// context for handlers to read via CompanyID().
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := mw.validateToken(parts[1])
		if err != nil {
			mw.l.Warnf(c.Request.Context(), "middleware.Auth: invalid token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(companyIDKey, claims.CompanyID)
		c.Next()
	}
}

func (mw Middleware) validateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(mw.jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.CompanyID == "" {
		return nil, errors.New("token missing company_id")
	}
	return claims, nil
}

// CompanyID returns the authenticated tenant ID set by Auth.
func CompanyID(c *gin.Context) string {
	return c.GetString(companyIDKey)
}
