package models

import "time"

type Message struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint      `gorm:"not null;index" json:"conversacion_id"`
	SenderID       uint      `gorm:"not null" json:"usuario_emisor_id"`
	Sender         *User     `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"usuario_emisor,omitempty"`
	Body           string    `gorm:"type:text;not null" json:"contenido_mensaje"`
	SentAt         time.Time `gorm:"autoCreateTime" json:"fecha_envio"`
	Read           bool      `gorm:"default:false" json:"leido"`
}
