package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// CreateCashFlowRequest movimiento manual (income | expense).
type CreateCashFlowRequest struct {
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// CashFlowResponse movimiento de caja.
type CashFlowResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	SaleID      string          `json:"sale_id,omitempty"`
}

// CashFlowListResponse movimientos más saldo actual.
type CashFlowListResponse struct {
	Items   []CashFlowResponse `json:"items"`
	Balance decimal.Decimal    `json:"balance"`
}

// BalanceResponse GET /api/cash-flow/balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// NewCashFlowResponse mapea la entidad.
func NewCashFlowResponse(e *entity.CashFlowEntry) CashFlowResponse {
	return CashFlowResponse{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Type:        e.Type,
		Amount:      e.Amount,
		Category:    e.Category,
		SaleID:      e.SaleID,
	}
}

// NewCashFlowListResponse mapea la lista; balance se recibe ya calculado sobre todos los movimientos.
func NewCashFlowListResponse(list []*entity.CashFlowEntry, balance decimal.Decimal) CashFlowListResponse {
	items := make([]CashFlowResponse, 0, len(list))
	for _, e := range list {
		items = append(items, NewCashFlowResponse(e))
	}
	return CashFlowListResponse{Items: items, Balance: balance}
}
