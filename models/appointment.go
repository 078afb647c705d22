package models

import "time"

const (
	AppointmentScheduled = "Programada"
	AppointmentCompleted = "Completada"
	AppointmentCancelled = "Cancelada"
)

type Appointment struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID   *uint     `json:"inmueble_id"`
	Property     *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL" json:"inmueble,omitempty"`
	InterestedID *uint     `json:"usuario_interesado_id"`
	Interested   *User     `gorm:"foreignKey:InterestedID;constraint:OnDelete:SET NULL" json:"usuario_interesado,omitempty"`
	// OwnerID is copied from the property at scheduling time and is not
	// re-derived if the property changes hands afterwards.
	OwnerID      *uint     `json:"usuario_propietario_id"`
	Owner        *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"usuario_propietario,omitempty"`
	DateTime     time.Time `gorm:"not null" json:"fecha_hora_cita"`
	Status       string    `gorm:"size:10;default:Programada" json:"estatus_cita"`
	Observations string    `gorm:"type:text" json:"observaciones"`
}
