package models

const (
	RoleClient = "Cliente"
	RoleAgent  = "Agente"
	RoleAdmin  = "Administrador"
	RoleOwner  = "Propietario"
)

type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"nombre_rol"`
}
