package middleware

import (
	"net/http"
	"strings"

	"github.com/inmobiliaria-ica/api-go/config"
	"github.com/inmobiliaria-ica/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a valid bearer access token and puts
// the caller's claims in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errMsg := parseBearer(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": errMsg})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present but lets
// anonymous requests through. Used on public reads that personalize output
// for authenticated callers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, _ := parseBearer(c); claims != nil {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context) (*utils.UserClaims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "Authorization header is required"
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
		return nil, "Invalid token format"
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret(), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, "Invalid token"
	}

	// Refresh tokens are only good for the refresh endpoint.
	if tokenType, _ := claims["token_type"].(string); tokenType != "access" {
		return nil, "Invalid token type"
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, "Invalid token claims"
	}
	role, _ := claims["role"].(string)

	return &utils.UserClaims{UserID: uint(userID), Role: role}, ""
}
