package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en el PDV.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentPix  = "pix"
)

// Tipos de tarjeta (solo cuando PaymentMethod = card).
const (
	CardDebit  = "debit"
	CardCredit = "credit"
)

// SaleItem línea de una venta finalizada. El precio queda congelado al momento de la venta.
type SaleItem struct {
	ProductID   string
	ProductName string
	Category    string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Subtotal = UnitPrice × Quantity.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale venta inmutable. Total siempre es la suma de los subtotales de Items.
type Sale struct {
	ID            string
	Date          time.Time
	Items         []SaleItem
	Total         decimal.Decimal
	PaymentMethod string
	CardType      string // debit | credit | "" si no es tarjeta
}

// Clone copia la venta y su slice de ítems.
func (s *Sale) Clone() *Sale {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Items = append([]SaleItem(nil), s.Items...)
	return &cp
}
