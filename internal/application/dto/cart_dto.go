package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

// AddCartItemRequest POST /api/cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

// SetCartQuantityRequest PUT /api/cart/items/:productId. Quantity <= 0 quita la línea.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea del carrito con el precio según el método de pago consultado.
type CartLineResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito completo.
type CartResponse struct {
	Items         []CartLineResponse `json:"items"`
	ItemCount     int                `json:"item_count"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	CardType      string             `json:"card_type,omitempty"`
}

// NewCartResponse arma la respuesta aplicando la política de precios de pos.
func NewCartResponse(lines []pos.CartLine, method, cardType string) CartResponse {
	items := make([]CartLineResponse, 0, len(lines))
	total := decimal.Zero
	count := 0
	for _, l := range lines {
		unit := pos.UnitPrice(l.Product, method, cardType)
		sub := unit.Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(sub)
		count += l.Quantity
		items = append(items, CartLineResponse{
			Product:   NewProductResponse(l.Product),
			Quantity:  l.Quantity,
			UnitPrice: unit,
			Subtotal:  sub,
		})
	}
	return CartResponse{Items: items, ItemCount: count, Total: total, PaymentMethod: method, CardType: cardType}
}
