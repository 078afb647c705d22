package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/stretchr/testify/assert"
)

func TestConversationTripleIsUnique(t *testing.T) {
	r, db := setupRouter(t)
	owner := createUser(t, db, "owner@example.com", models.RoleClient)
	buyer := createUser(t, db, "buyer@example.com", models.RoleClient)
	property := createProperty(t, db, owner, nil, "ICA-CONV-1", 150000, 3, 2, models.ModerationApproved)

	token := makeToken(t, buyer.ID, models.RoleClient)
	payload := map[string]interface{}{
		"inmueble_id":           property.ID,
		"usuario_interesado_id": buyer.ID,
		"usuario_vendedor_id":   owner.ID,
	}

	w := perform(r, http.MethodPost, "/api/conversaciones", payload, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodPost, "/api/conversaciones", payload, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.Conversation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Same pair on another property opens a new thread.
	other := createProperty(t, db, owner, nil, "ICA-CONV-2", 150000, 3, 2, models.ModerationApproved)
	payload["inmueble_id"] = other.ID
	w = perform(r, http.MethodPost, "/api/conversaciones", payload, token)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListConversationsScopedToCaller(t *testing.T) {
	r, db := setupRouter(t)
	owner := createUser(t, db, "owner@example.com", models.RoleClient)
	buyer := createUser(t, db, "buyer@example.com", models.RoleClient)
	other := createUser(t, db, "other@example.com", models.RoleClient)
	property := createProperty(t, db, owner, nil, "ICA-CONV-3", 150000, 3, 2, models.ModerationApproved)

	assert.NoError(t, db.Create(&models.Conversation{
		PropertyID: property.ID, InterestedID: buyer.ID, CounterpartID: owner.ID,
	}).Error)
	assert.NoError(t, db.Create(&models.Conversation{
		PropertyID: property.ID, InterestedID: other.ID, CounterpartID: owner.ID,
	}).Error)

	w := perform(r, http.MethodGet, "/api/conversaciones", nil, makeToken(t, buyer.ID, models.RoleClient))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, results(t, w), 1)

	// The owner is counterpart on both threads.
	w = perform(r, http.MethodGet, "/api/conversaciones", nil, makeToken(t, owner.ID, models.RoleClient))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, results(t, w), 2)
}

func TestMessageLifecycle(t *testing.T) {
	r, db := setupRouter(t)
	owner := createUser(t, db, "owner@example.com", models.RoleClient)
	buyer := createUser(t, db, "buyer@example.com", models.RoleClient)
	property := createProperty(t, db, owner, nil, "ICA-MSG-1", 150000, 3, 2, models.ModerationApproved)

	conversation := models.Conversation{
		PropertyID: property.ID, InterestedID: buyer.ID, CounterpartID: owner.ID,
	}
	assert.NoError(t, db.Create(&conversation).Error)

	w := perform(r, http.MethodPost, "/api/mensajes", map[string]interface{}{
		"conversacion_id":   conversation.ID,
		"contenido_mensaje": "Sigue disponible la casa?",
	}, makeToken(t, buyer.ID, models.RoleClient))
	assert.Equal(t, http.StatusCreated, w.Code)

	var message models.Message
	assert.NoError(t, db.Last(&message).Error)
	assert.Equal(t, buyer.ID, message.SenderID, "sender comes from the token, not the payload")
	assert.False(t, message.Read)

	w = perform(r, http.MethodPut, fmt.Sprintf("/api/mensajes/%d", message.ID), map[string]interface{}{
		"leido": true,
	}, makeToken(t, owner.ID, models.RoleClient))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, db.First(&message, message.ID).Error)
	assert.True(t, message.Read)
	assert.Equal(t, "Sigue disponible la casa?", message.Body, "body is immutable")
}

func TestDeleteConversationRemovesMessages(t *testing.T) {
	r, db := setupRouter(t)
	owner := createUser(t, db, "owner@example.com", models.RoleClient)
	buyer := createUser(t, db, "buyer@example.com", models.RoleClient)
	property := createProperty(t, db, owner, nil, "ICA-MSG-2", 150000, 3, 2, models.ModerationApproved)

	conversation := models.Conversation{
		PropertyID: property.ID, InterestedID: buyer.ID, CounterpartID: owner.ID,
	}
	assert.NoError(t, db.Create(&conversation).Error)
	assert.NoError(t, db.Create(&models.Message{
		ConversationID: conversation.ID, SenderID: buyer.ID, Body: "Hola",
	}).Error)

	w := perform(r, http.MethodDelete, fmt.Sprintf("/api/conversaciones/%d", conversation.ID),
		nil, makeToken(t, buyer.ID, models.RoleClient))
	assert.Equal(t, http.StatusNoContent, w.Code)

	var messages int64
	assert.NoError(t, db.Model(&models.Message{}).Count(&messages).Error)
	assert.Equal(t, int64(0), messages)
}
