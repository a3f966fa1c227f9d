// Package pos contiene las reglas puras del punto de venta: carrito, política de precios,
// construcción de ventas y saldo del flujo de caja. Sin I/O ni dependencias de infraestructura.
package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// CartLine producto (snapshot) + cantidad. Quantity siempre >= 1.
type CartLine struct {
	Product  *entity.Product
	Quantity int
}

// Cart agrupa las líneas seleccionadas antes de finalizar la venta. No se persiste.
type Cart struct {
	lines []CartLine
}

// NewCart crea un carrito vacío.
func NewCart() *Cart { return &Cart{} }

// AddLine suma 1 a la línea del producto o agrega una nueva con cantidad 1.
// La línea existente conserva su snapshot pero se refresca con los datos actuales del producto.
func (c *Cart) AddLine(p *entity.Product) {
	if p == nil {
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			c.lines[i].Product = p.Clone()
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p.Clone(), Quantity: 1})
}

// SetQuantity fija la cantidad; n <= 0 elimina la línea. Sin efecto si el producto no está.
func (c *Cart) SetQuantity(productID string, n int) {
	if n <= 0 {
		c.RemoveLine(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = n
			return
		}
	}
}

// RemoveLine quita la línea del producto (no-op si no existe).
func (c *Cart) RemoveLine(productID string) {
	out := c.lines[:0]
	for _, l := range c.lines {
		if l.Product.ID != productID {
			out = append(out, l)
		}
	}
	c.lines = out
}

// RefreshProduct reemplaza el snapshot del producto si está en el carrito.
func (c *Cart) RefreshProduct(p *entity.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Product = p.Clone()
		}
	}
}

// Clear vacía el carrito.
func (c *Cart) Clear() { c.lines = nil }

// IsEmpty indica si no hay líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, l := range c.lines {
		out[i] = CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	return out
}

// Count total de unidades en el carrito.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total Σ(precio unitario × cantidad) según el método de pago.
func (c *Cart) Total(method, cardType string) decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(UnitPrice(l.Product, method, cardType).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
