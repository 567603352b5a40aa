package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Constants for context keys
const (
	ContextUserIDKey    = "userID"
	ContextUserRoleKey  = "userRole"
	ContextUserClubKey  = "userClub"
	ContextRequestIDKey = "requestID"
)

// RequestIDHeader carries the correlation ID set by RequestIDMiddleware.
const RequestIDHeader = "X-Request-Id"

// jwtClaims defines the structure we expect in the JWT payload minted
// by the club's identity provider. This service only verifies tokens;
// login and registration flows live elsewhere.
type jwtClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	Club   string      `json:"club"`
	jwt.RegisteredClaims
}

// RequestIDMiddleware tags every request with a correlation ID, reusing
// the caller's X-Request-Id when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err))
			}
			return
		}

		if !token.Valid || claims.UserID == "" || claims.Role == "" {
			abortWithError(c, http.StatusUnauthorized, "Invalid token or missing claims")
			return
		}

		// Set user information in the context for downstream handlers
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserRoleKey, claims.Role)
		c.Set(ContextUserClubKey, claims.Club)

		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RoleMiddleware creates middleware to check if user has the required role(s).
// Must run AFTER AuthMiddleware.
func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleRaw, exists := c.Get(ContextUserRoleKey)
		if !exists {
			abortWithError(c, http.StatusInternalServerError, "User role not found in context")
			return
		}

		userRole, ok := roleRaw.(domain.Role)
		if !ok {
			abortWithError(c, http.StatusInternalServerError, "Invalid user role type in context")
			return
		}

		allowed := false
		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				allowed = true
				break
			}
		}

		if !allowed {
			abortWithError(c, http.StatusForbidden, fmt.Sprintf("Access denied: Role '%s' does not have permission", userRole))
			return
		}

		c.Next()
	}
}

// getActorFromContext assembles the acting account from the claims the
// auth middleware stored.
func getActorFromContext(c *gin.Context) (service.Actor, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return service.Actor{}, errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return service.Actor{}, errors.New("invalid user ID type in context")
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return service.Actor{}, fmt.Errorf("invalid user ID in token: %w", err)
	}

	roleRaw, exists := c.Get(ContextUserRoleKey)
	if !exists {
		return service.Actor{}, errors.New("user role not found in context")
	}
	role, ok := roleRaw.(domain.Role)
	if !ok {
		return service.Actor{}, errors.New("invalid user role type in context")
	}

	club, _ := c.Get(ContextUserClubKey)
	clubStr, _ := club.(string)

	return service.Actor{ID: id, Role: role, Club: clubStr}, nil
}
