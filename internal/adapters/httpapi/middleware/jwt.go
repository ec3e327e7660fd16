package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/TopUP/blog/internal/core/auth"
)

// IdentityKey is the gin context key the authenticated caller is stored
// under.
const IdentityKey = "identity"

// Identity is the caller extracted from a verified bearer token.
type Identity struct {
	ID       uint
	FullName string
	Email    string
}

// JWTAuth rejects requests without a valid HS256 bearer token and stores the
// caller identity in the gin context. Failures never reach the domain layer.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}

		claims := &auth.Claims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			unauthorized(c)
			return
		}

		c.Set(IdentityKey, Identity{
			ID:       claims.ID,
			FullName: claims.FullName,
			Email:    claims.Email,
		})
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message":    "Unauthorized",
		"statusCode": http.StatusUnauthorized,
	})
}
