package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstNames   string    `gorm:"size:100;not null" json:"nombres"`
	LastNames    string    `gorm:"size:100;not null" json:"apellidos"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // never serialized
	Phone        *string   `gorm:"size:20" json:"telefono"`
	NationalID   *string   `gorm:"size:20;uniqueIndex" json:"cedula"`
	RoleID       *uint     `json:"rol_id"`
	Role         *Role     `gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL" json:"rol,omitempty"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
	Active       bool      `gorm:"default:true" json:"activo"`
}
