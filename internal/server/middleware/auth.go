package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const sessionContextKey = contextKey("session")

// Session is the authenticated identity carried through request context.
// Handlers and services receive it explicitly; there is no ambient
// session state anywhere in the application.
type Session struct {
	UserID   uint
	Username string
	IsAdmin  bool
}

// VoterID returns the session user id in the form stored in vote sets.
func (s *Session) VoterID() string {
	return strconv.FormatUint(uint64(s.UserID), 10)
}

// JWTAuth middleware for JWT authentication
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization token required"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}
		username, _ := claims["username"].(string)
		isAdmin, _ := claims["admin"].(bool)

		session := &Session{
			UserID:   uint(sub),
			Username: username,
			IsAdmin:  isAdmin,
		}

		ctx := context.WithValue(c.Request.Context(), sessionContextKey, session)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminOnly rejects sessions without the admin claim. Must run after
// JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := GetSessionFromContext(c.Request.Context())
		if err != nil || !session.IsAdmin {
			c.AbortWithStatusJSON(403, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// GetSessionFromContext retrieves the authenticated session from context
func GetSessionFromContext(ctx context.Context) (*Session, error) {
	session, ok := ctx.Value(sessionContextKey).(*Session)
	if !ok {
		return nil, errors.New("session not found in context")
	}
	return session, nil
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && bearerToken[:7] == "Bearer " {
		return bearerToken[7:]
	}
	return ""
}
