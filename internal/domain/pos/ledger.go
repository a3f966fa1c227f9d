package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// Balance = Σ(income + sale) − Σ(expense). Se recalcula siempre; no hay saldo acumulado.
func Balance(entries []*entity.CashFlowEntry) decimal.Decimal {
	bal := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case entity.CashFlowIncome, entity.CashFlowSale:
			bal = bal.Add(e.Amount)
		case entity.CashFlowExpense:
			bal = bal.Sub(e.Amount)
		}
	}
	return bal
}

// SaleFlowEntry deriva el movimiento de caja de una venta (ID determinista a partir del ID de la venta).
func SaleFlowEntry(sale *entity.Sale) *entity.CashFlowEntry {
	return &entity.CashFlowEntry{
		ID:          entity.SaleFlowID(sale.ID),
		Date:        sale.Date,
		Description: "Venda #" + shortID(sale.ID),
		Type:        entity.CashFlowSale,
		Amount:      sale.Total,
		SaleID:      sale.ID,
	}
}

// ValidateManualEntry solo acepta income/expense con descripción y monto > 0 (ver ValidAmount).
func ValidateManualEntry(description, typ string, amount decimal.Decimal) error {
	if description == "" {
		return domain.ErrInvalidInput
	}
	if typ != entity.CashFlowIncome && typ != entity.CashFlowExpense {
		return domain.ErrInvalidInput
	}
	if !amount.GreaterThan(decimal.Zero) || !ValidAmount(amount) {
		return domain.ErrInvalidInput
	}
	return nil
}

// shortID últimos 6 caracteres del ID.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
