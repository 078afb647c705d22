package controllers_test

import (
	"net/http"
	"testing"

	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/stretchr/testify/assert"
)

func TestRegisterThenLogin(t *testing.T) {
	r, db := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"nombres":   "Maria",
		"apellidos": "Gonzalez",
		"email":     "maria@example.com",
		"password":  "secret123",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	tokens, ok := body["tokens"].(map[string]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, tokens["access"])
	assert.NotEmpty(t, tokens["refresh"])

	var user models.User
	assert.NoError(t, db.Where("email = ?", "maria@example.com").First(&user).Error)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be stored hashed")

	w = perform(r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "maria@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := setupRouter(t)

	payload := map[string]interface{}{
		"nombres":   "Maria",
		"apellidos": "Gonzalez",
		"email":     "maria@example.com",
		"password":  "secret123",
	}
	w := perform(r, http.MethodPost, "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodPost, "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoginWrongPassword(t *testing.T) {
	r, db := setupRouter(t)
	createUser(t, db, "maria@example.com", "")

	w := perform(r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "maria@example.com",
		"password": "not-the-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"nombres":   "Maria",
		"apellidos": "Gonzalez",
		"email":     "maria@example.com",
		"password":  "secret123",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	tokens := decode(t, w)["tokens"].(map[string]interface{})

	w = perform(r, http.MethodPost, "/api/auth/refresh", map[string]interface{}{
		"refresh": tokens["refresh"],
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	refreshed := decode(t, w)["tokens"].(map[string]interface{})
	assert.NotEmpty(t, refreshed["access"])

	// An access token is not accepted in the refresh slot.
	w = perform(r, http.MethodPost, "/api/auth/refresh", map[string]interface{}{
		"refresh": tokens["access"],
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/inmuebles", map[string]interface{}{
		"titulo_publicacion": "Casa sin token",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(r, http.MethodPost, "/api/inmuebles", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
