package pos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

func TestBalance_IngresoGastoVenta(t *testing.T) {
	entries := []*entity.CashFlowEntry{
		{Type: entity.CashFlowIncome, Amount: decimal.NewFromInt(100)},
		{Type: entity.CashFlowExpense, Amount: decimal.NewFromInt(30)},
		{Type: entity.CashFlowSale, Amount: decimal.NewFromInt(50)},
	}
	assert.True(t, pos.Balance(entries).Equal(decimal.NewFromInt(120)))
	assert.True(t, pos.Balance(nil).IsZero())
}

func TestSaleFlowEntry_DerivaIDYDescripcion(t *testing.T) {
	sale := &entity.Sale{ID: "1718040000123", Date: time.Now(), Total: decimal.RequireFromString("79.90")}
	e := pos.SaleFlowEntry(sale)
	assert.Equal(t, "flow-1718040000123", e.ID)
	assert.Equal(t, "Venda #000123", e.Description)
	assert.Equal(t, entity.CashFlowSale, e.Type)
	assert.Equal(t, sale.ID, e.SaleID)
	assert.True(t, e.Amount.Equal(sale.Total))
	assert.True(t, e.IsSaleDerived())
}

func TestValidateManualEntry(t *testing.T) {
	assert.NoError(t, pos.ValidateManualEntry("aluguel", entity.CashFlowExpense, decimal.NewFromInt(10)))
	assert.ErrorIs(t, pos.ValidateManualEntry("", entity.CashFlowIncome, decimal.NewFromInt(10)), domain.ErrInvalidInput)
	assert.ErrorIs(t, pos.ValidateManualEntry("x", entity.CashFlowSale, decimal.NewFromInt(10)), domain.ErrInvalidInput)
	assert.ErrorIs(t, pos.ValidateManualEntry("x", entity.CashFlowIncome, decimal.Zero), domain.ErrInvalidInput)
	assert.ErrorIs(t, pos.ValidateManualEntry("x", entity.CashFlowIncome, decimal.NewFromInt(-1)), domain.ErrInvalidInput)
}
