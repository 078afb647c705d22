package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/models"
)

type UserClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// IsModerator reports whether the caller may run moderation actions and
// mutate properties it does not own.
func (u *UserClaims) IsModerator() bool {
	return u.Role == models.RoleAdmin || u.Role == models.RoleAgent
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
