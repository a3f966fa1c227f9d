package pos

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// StockLookup devuelve el stock actual de un producto; ok=false si el producto ya no existe.
type StockLookup func(productID string) (stock int, ok bool)

// BuildSale valida el carrito contra el stock actual y construye la venta con precios congelados.
// Orden de validación: carrito vacío, pago, producto inexistente, stock insuficiente, total.
// No modifica nada: el caller aplica la venta solo si no hay error.
func BuildSale(lines []CartLine, lookup StockLookup, method, cardType, saleID string, now time.Time) (*entity.Sale, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := ValidatePayment(method, cardType); err != nil {
		return nil, err
	}
	items := make([]entity.SaleItem, 0, len(lines))
	for _, l := range lines {
		stock, ok := lookup(l.Product.ID)
		if !ok {
			return nil, domain.ErrNotFound
		}
		if l.Quantity > stock {
			return nil, &domain.InsufficientStockError{
				ProductID:   l.Product.ID,
				ProductName: l.Product.Name,
				Requested:   l.Quantity,
				Available:   stock,
			}
		}
		item := entity.SaleItem{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Category:    l.Product.Category,
			UnitPrice:   UnitPrice(l.Product, method, cardType),
			Quantity:    l.Quantity,
		}
		items = append(items, item)
	}
	total := SaleTotal(items)
	if !ValidAmount(total) {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Sale{
		ID:            saleID,
		Date:          now,
		Items:         items,
		Total:         total,
		PaymentMethod: method,
		CardType:      cardType,
	}, nil
}

// StockDecrements agrega las cantidades vendidas por producto.
func StockDecrements(sale *entity.Sale) map[string]int {
	out := make(map[string]int, len(sale.Items))
	for _, it := range sale.Items {
		out[it.ProductID] += it.Quantity
	}
	return out
}

// SaleTotal recalcula Σ subtotales (invariante de Sale.Total).
func SaleTotal(items []entity.SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
