package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock solo se modifica por venta (descuento), por eliminación de venta (reposición)
// o por edición correctiva (valor absoluto).
type Product struct {
	ID               string
	SKUNumber        int64 // número correlativo asignado al crear (ms desde epoch)
	Name             string
	Price            decimal.Decimal  // precio de contado
	InstallmentPrice *decimal.Decimal // precio a plazo (tarjeta de crédito), opcional
	Category         string
	Stock            int
	ImageURL         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Clone devuelve una copia independiente (InstallmentPrice incluido).
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	if p.InstallmentPrice != nil {
		ip := *p.InstallmentPrice
		cp.InstallmentPrice = &ip
	}
	return &cp
}
