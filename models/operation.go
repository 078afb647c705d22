package models

import "time"

const (
	OperationSale   = "Venta"
	OperationRental = "Alquiler"
)

type Operation struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID  *uint     `json:"inmueble_id"`
	Property    *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL" json:"inmueble,omitempty"`
	SellerID    *uint     `json:"usuario_vendedor_id"`
	Seller      *User     `gorm:"foreignKey:SellerID;constraint:OnDelete:SET NULL" json:"usuario_vendedor,omitempty"`
	BuyerID     *uint     `json:"usuario_comprador_id"`
	Buyer       *User     `gorm:"foreignKey:BuyerID;constraint:OnDelete:SET NULL" json:"usuario_comprador,omitempty"`
	Type        string    `gorm:"size:10;not null" json:"tipo_operacion"`
	Date        time.Time `json:"fecha_operacion"`
	FinalAmount float64   `gorm:"not null" json:"monto_final"`
	Currency    string    `gorm:"size:3;default:USD" json:"moneda_cierre"`
	Notes       string    `gorm:"type:text" json:"notas"`
}
