package models

import "time"

// Conversation threads messages between an interested user and the property's
// counterpart. The (property, interested, counterpart) triple is unique so a
// pair of users gets at most one thread per property.
type Conversation struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID    uint      `gorm:"not null;uniqueIndex:idx_conversation_triple" json:"inmueble_id"`
	Property      *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"inmueble,omitempty"`
	InterestedID  uint      `gorm:"not null;uniqueIndex:idx_conversation_triple" json:"usuario_interesado_id"`
	Interested    *User     `gorm:"foreignKey:InterestedID;constraint:OnDelete:CASCADE" json:"usuario_interesado,omitempty"`
	CounterpartID uint      `gorm:"not null;uniqueIndex:idx_conversation_triple" json:"usuario_vendedor_id"`
	Counterpart   *User     `gorm:"foreignKey:CounterpartID;constraint:OnDelete:CASCADE" json:"usuario_vendedor,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	Messages      []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"mensajes,omitempty"`
}
