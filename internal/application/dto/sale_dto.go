package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// FinalizeSaleRequest POST /api/sales.
type FinalizeSaleRequest struct {
	PaymentMethod string `json:"payment_method"`
	CardType      string `json:"card_type"`
}

// SaleItemResponse ítem con precio congelado.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta finalizada.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	CardType      string             `json:"card_type,omitempty"`
}

// SaleListResponse historial con totales del filtro aplicado.
type SaleListResponse struct {
	Items         []SaleResponse  `json:"items"`
	Count         int             `json:"count"`
	Revenue       decimal.Decimal `json:"revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// NewSaleResponse mapea la entidad.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Category:    it.Category,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal(),
		})
	}
	return SaleResponse{
		ID:            s.ID,
		Date:          s.Date,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CardType:      s.CardType,
	}
}

// NewSaleListResponse calcula cantidad, facturación y ticket medio.
func NewSaleListResponse(list []*entity.Sale) SaleListResponse {
	resp := SaleListResponse{Items: make([]SaleResponse, 0, len(list)), Revenue: decimal.Zero, AverageTicket: decimal.Zero}
	for _, s := range list {
		resp.Items = append(resp.Items, NewSaleResponse(s))
		resp.Revenue = resp.Revenue.Add(s.Total)
	}
	resp.Count = len(list)
	if resp.Count > 0 {
		resp.AverageTicket = resp.Revenue.Div(decimal.NewFromInt(int64(resp.Count))).Round(2)
	}
	return resp
}
