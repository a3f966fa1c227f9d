package store

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

// AddToCart agrega una unidad del producto al carrito.
func (s *Store) AddToCart(productID string) ([]pos.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.productIndex(productID)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	s.cart.AddLine(s.products[idx])
	return s.cart.Lines(), nil
}

// SetCartQuantity fija la cantidad de una línea; n <= 0 la elimina.
func (s *Store) SetCartQuantity(productID string, n int) []pos.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productID, n)
	return s.cart.Lines()
}

// RemoveFromCart quita la línea del producto.
func (s *Store) RemoveFromCart(productID string) []pos.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveLine(productID)
	return s.cart.Lines()
}

// ClearCart vacía el carrito.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Cart devuelve las líneas actuales.
func (s *Store) Cart() []pos.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// CartTotal total del carrito para el método de pago indicado.
func (s *Store) CartTotal(method, cardType string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total(method, cardType)
}
