package models

import "time"

// Sale status of a property, independent of moderation.
const (
	SaleAvailable = "Disponible"
	SaleSold      = "Vendido"
	SaleRented    = "Alquilado"
	SaleReserved  = "Reservado"
)

// Moderation workflow states. Only approved properties are publicly listed.
const (
	ModerationPending  = "Pendiente"
	ModerationApproved = "Aprobado"
	ModerationRejected = "Rechazado"
)

const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyBS  = "BS"
)

type Property struct {
	ID               uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferenceCode    string            `gorm:"size:50;uniqueIndex;not null" json:"codigo_referencia"`
	Title            string            `gorm:"size:255;not null" json:"titulo_publicacion"`
	Description      string            `gorm:"type:text" json:"descripcion_publica"`
	PropertyTypeID   *uint             `json:"tipo_inmueble_id"`
	PropertyType     *PropertyType     `gorm:"foreignKey:PropertyTypeID;constraint:OnDelete:SET NULL" json:"tipo_inmueble,omitempty"`
	MunicipalityID   *uint             `json:"municipio_id"`
	Municipality     *Municipality     `gorm:"foreignKey:MunicipalityID;constraint:OnDelete:SET NULL" json:"municipio,omitempty"`
	Address          string            `gorm:"size:255;not null" json:"direccion_exacta"`
	Price            float64           `gorm:"not null" json:"precio"`
	LandArea         *float64          `json:"superficie_terreno"`
	BuiltArea        float64           `json:"superficie_construccion"`
	Bedrooms         int               `gorm:"default:0" json:"habitaciones"`
	Bathrooms        int               `gorm:"default:0" json:"banos"`
	ParkingSpots     int               `gorm:"default:0" json:"puestos_estacionamiento"`
	ConstructionYear *int              `json:"ano_construccion"`
	SaleStatus       string            `gorm:"size:10;default:Disponible" json:"estatus_venta"`
	ModerationStatus string            `gorm:"size:10;default:Pendiente" json:"estatus_moderacion"`
	ModeratorID      *uint             `json:"moderador_id"`
	Moderator        *User             `gorm:"foreignKey:ModeratorID;constraint:OnDelete:SET NULL" json:"moderador,omitempty"`
	ModeratedAt      *time.Time        `json:"fecha_moderacion"`
	RejectionReason  string            `gorm:"type:text" json:"motivo_rechazo"`
	OwnerID          *uint             `json:"propietario_id"`
	Owner            *User             `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"propietario,omitempty"`
	PublishedAt      time.Time         `gorm:"autoCreateTime" json:"fecha_publicacion"`
	Features         []PropertyFeature `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"caracteristicas,omitempty"`
}
