package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserHashesPassword(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)

	w := perform(r, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombres":   "Pedro",
		"apellidos": "Perez",
		"email":     "pedro@example.com",
		"password":  "clave-segura",
	}, makeToken(t, admin.ID, models.RoleAdmin))
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "pedro@example.com").First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("clave-segura")))
	assert.NotContains(t, w.Body.String(), "clave-segura")
	assert.NotContains(t, w.Body.String(), user.PasswordHash, "the hash never leaves the server")
}

func TestDeleteUserCleansUpReferences(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	owner := createUser(t, db, "owner@example.com", models.RoleClient)
	visitor := createUser(t, db, "visitor@example.com", models.RoleClient)
	property := createProperty(t, db, owner, nil, "ICA-USR-1", 150000, 3, 2, models.ModerationApproved)

	conversation := models.Conversation{
		PropertyID: property.ID, InterestedID: visitor.ID, CounterpartID: owner.ID,
	}
	assert.NoError(t, db.Create(&conversation).Error)
	assert.NoError(t, db.Create(&models.Message{
		ConversationID: conversation.ID, SenderID: visitor.ID, Body: "Hola",
	}).Error)

	propertyID := property.ID
	interestedID := visitor.ID
	appointment := models.Appointment{
		PropertyID: &propertyID, InterestedID: &interestedID, OwnerID: &owner.ID,
		Status: models.AppointmentScheduled,
	}
	assert.NoError(t, db.Create(&appointment).Error)

	w := perform(r, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", owner.ID),
		nil, makeToken(t, admin.ID, models.RoleAdmin))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Owned properties and their threads go with the owner.
	assert.Equal(t, int64(0), countOf(t, db, &models.Property{}))
	assert.Equal(t, int64(0), countOf(t, db, &models.Conversation{}))
	assert.Equal(t, int64(0), countOf(t, db, &models.Message{}))

	// The appointment survives with its owner reference cleared.
	var got models.Appointment
	assert.NoError(t, db.First(&got, appointment.ID).Error)
	assert.Nil(t, got.OwnerID)
	assert.Nil(t, got.PropertyID)
}
