package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	CashFlowIncome  = "income"
	CashFlowExpense = "expense"
	CashFlowSale    = "sale" // derivado de una venta; solo se elimina junto con la venta
)

// CashFlowEntry movimiento del flujo de caja. Amount nunca es negativo; el signo lo da Type.
type CashFlowEntry struct {
	ID          string
	Date        time.Time
	Description string
	Type        string
	Amount      decimal.Decimal
	Category    string
	SaleID      string // solo para Type = sale
}

// SaleFlowID deriva el ID del movimiento de caja de una venta.
func SaleFlowID(saleID string) string {
	return "flow-" + saleID
}

// IsSaleDerived indica si el movimiento pertenece a una venta.
func (e *CashFlowEntry) IsSaleDerived() bool {
	return e.Type == CashFlowSale
}
