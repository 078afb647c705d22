package controllers

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/config"
	"github.com/inmobiliaria-ica/api-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		FirstNames string  `json:"nombres" binding:"required"`
		LastNames  string  `json:"apellidos" binding:"required"`
		Email      string  `json:"email" binding:"required,email"`
		Password   string  `json:"password" binding:"required,min=6"`
		Phone      *string `json:"telefono"`
		NationalID *string `json:"cedula"`
		RoleID     *uint   `json:"rol_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, err)
		return
	}

	user := models.User{
		FirstNames:   input.FirstNames,
		LastNames:    input.LastNames,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Phone:        input.Phone,
		NationalID:   input.NationalID,
		RoleID:       input.RoleID,
		Active:       true,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or cedula already registered"})
			return
		}
		internalError(c, err)
		return
	}

	access, refresh, err := ac.issueTokens(&user)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"tokens":  gin.H{"access": access, "refresh": refresh},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Preload("Role").Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	access, refresh, err := ac.issueTokens(&user)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"tokens":  gin.H{"access": access, "refresh": refresh},
	})
}

// Refresh trades a valid refresh token for a new pair. Tokens are
// self-contained; nothing is persisted or revoked server-side.
func (ac *AuthController) Refresh(c *gin.Context) {
	var input struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(input.Refresh, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret(), nil
	})
	if err != nil || !parsed.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != "refresh" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token type"})
		return
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}

	var user models.User
	if err := ac.DB.Preload("Role").First(&user, uint(userID)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	access, refresh, err := ac.issueTokens(&user)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed",
		"user":    user,
		"tokens":  gin.H{"access": access, "refresh": refresh},
	})
}

func (ac *AuthController) issueTokens(user *models.User) (string, string, error) {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	} else if user.RoleID != nil {
		var role models.Role
		if err := ac.DB.First(&role, *user.RoleID).Error; err == nil {
			roleName = role.Name
		}
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"role":       roleName,
		"token_type": "access",
		"exp":        time.Now().Add(config.AccessTokenLifetime()).Unix(),
	})

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"token_type": "refresh",
		"exp":        time.Now().Add(config.RefreshTokenLifetime()).Unix(),
	})

	access, err := accessToken.SignedString(config.JWTSecret())
	if err != nil {
		return "", "", err
	}
	refresh, err := refreshToken.SignedString(config.JWTSecret())
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
