package store

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// SaleFilter filtro para el historial de ventas. Campos vacíos no filtran.
type SaleFilter struct {
	From          time.Time
	To            time.Time
	PaymentMethod string
}

func (f SaleFilter) match(sale *entity.Sale) bool {
	if !f.From.IsZero() && sale.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && sale.Date.After(f.To) {
		return false
	}
	if f.PaymentMethod != "" && sale.PaymentMethod != f.PaymentMethod {
		return false
	}
	return true
}

// FinalizeSale convierte el carrito en una venta:
//  1. valida carrito, pago y stock contra el catálogo local (sin tocar el backend)
//  2. en una sola transacción del backend: bloquea productos, revalida stock, descuenta,
//     guarda la venta y el movimiento de caja derivado
//  3. solo si hubo Commit aplica los mismos cambios al estado local y vacía el carrito
func (s *Store) FinalizeSale(ctx context.Context, method, cardType string) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	units := s.cart.Count()
	sale, err := pos.BuildSale(s.cart.Lines(), s.localStock, method, cardType, s.opts.NewID(), s.opts.Now())
	if err != nil {
		return nil, err
	}
	flow := pos.SaleFlowEntry(sale)
	decrements := pos.StockDecrements(sale)

	err = s.external(ctx, "finalizar venta", func(ctx context.Context) error {
		return s.backend.Tx.RunSale(ctx, func(
			productRepo repository.ProductRepository,
			saleRepo repository.SaleRepository,
			cashFlowRepo repository.CashFlowRepository,
		) error {
			// Orden fijo de bloqueo para evitar deadlocks entre ventas concurrentes.
			for _, productID := range slices.Sorted(maps.Keys(decrements)) {
				qty := decrements[productID]
				p, err := productRepo.GetForUpdate(ctx, productID)
				if err != nil {
					return err
				}
				if p == nil {
					return domain.ErrNotFound
				}
				if p.Stock < qty {
					return &domain.InsufficientStockError{
						ProductID: p.ID, ProductName: p.Name, Requested: qty, Available: p.Stock,
					}
				}
				if err := productRepo.AdjustStock(ctx, productID, -qty); err != nil {
					if errors.Is(err, domain.ErrInsufficientStock) {
						return &domain.InsufficientStockError{
							ProductID: p.ID, ProductName: p.Name, Requested: qty, Available: p.Stock,
						}
					}
					return err
				}
			}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return err
			}
			return cashFlowRepo.Create(ctx, flow)
		})
	})
	if err != nil {
		var se *domain.InsufficientStockError
		if errors.As(err, &se) {
			s.syncStock(se.ProductID, se.Available)
		}
		return nil, err
	}

	for productID, qty := range decrements {
		s.adjustLocalStock(productID, -qty)
	}
	s.sales = append([]*entity.Sale{sale}, s.sales...)
	s.cashFlow = append([]*entity.CashFlowEntry{flow}, s.cashFlow...)
	s.cart.Clear()
	s.log.Info().
		Str("sale_id", sale.ID).
		Str("total", sale.Total.StringFixed(2)).
		Str("payment_method", sale.PaymentMethod).
		Int("items", len(sale.Items)).
		Int("units", units).
		Msg("venta finalizada")
	return sale.Clone(), nil
}

// DeleteSale elimina la venta y su movimiento de caja en una sola transacción.
// Con RestockOnDelete repone el stock de los productos que aún existen, según los ítems
// guardados en el backend.
func (s *Store) DeleteSale(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.saleIndex(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	sale := s.sales[idx]
	flowID := entity.SaleFlowID(id)
	restocked := map[string]int{}

	err := s.external(ctx, "eliminar venta", func(ctx context.Context) error {
		return s.backend.Tx.RunSale(ctx, func(
			productRepo repository.ProductRepository,
			saleRepo repository.SaleRepository,
			cashFlowRepo repository.CashFlowRepository,
		) error {
			stored, err := saleRepo.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if stored == nil {
				return domain.ErrNotFound
			}
			entry, err := cashFlowRepo.GetByID(ctx, flowID)
			if err != nil {
				return err
			}
			if entry != nil {
				if err := cashFlowRepo.Delete(ctx, flowID); err != nil {
					return err
				}
			}
			if err := saleRepo.Delete(ctx, id); err != nil {
				return err
			}
			if !s.opts.RestockOnDelete {
				return nil
			}
			increments := pos.StockDecrements(stored)
			for _, productID := range slices.Sorted(maps.Keys(increments)) {
				qty := increments[productID]
				p, err := productRepo.GetForUpdate(ctx, productID)
				if err != nil {
					return err
				}
				if p == nil {
					continue
				}
				if err := productRepo.AdjustStock(ctx, productID, qty); err != nil {
					return err
				}
				restocked[productID] = qty
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	s.sales = append(s.sales[:idx:idx], s.sales[idx+1:]...)
	if fi := s.cashFlowIndex(flowID); fi >= 0 {
		s.cashFlow = append(s.cashFlow[:fi:fi], s.cashFlow[fi+1:]...)
	}
	for productID, qty := range restocked {
		s.adjustLocalStock(productID, qty)
	}
	s.log.Info().
		Str("sale_id", id).
		Str("total", sale.Total.StringFixed(2)).
		Bool("restocked", len(restocked) > 0).
		Msg("venta eliminada")
	return nil
}

// GetSale devuelve una copia de la venta o domain.ErrNotFound.
func (s *Store) GetSale(id string) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.saleIndex(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	return s.sales[idx].Clone(), nil
}

// ListSales ventas que cumplen el filtro, más recientes primero.
func (s *Store) ListSales(f SaleFilter) []*entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		if f.match(sale) {
			out = append(out, sale.Clone())
		}
	}
	return out
}

func (s *Store) localStock(productID string) (int, bool) {
	idx := s.productIndex(productID)
	if idx < 0 {
		return 0, false
	}
	return s.products[idx].Stock, true
}

// adjustLocalStock reemplaza el producto por una copia con el stock ajustado.
func (s *Store) adjustLocalStock(productID string, delta int) {
	idx := s.productIndex(productID)
	if idx < 0 {
		return
	}
	p := s.products[idx].Clone()
	p.Stock += delta
	p.UpdatedAt = s.opts.Now()
	s.products[idx] = p
}

// syncStock alinea el stock local con el valor que reportó el backend.
func (s *Store) syncStock(productID string, stock int) {
	idx := s.productIndex(productID)
	if idx < 0 || s.products[idx].Stock == stock {
		return
	}
	s.log.Warn().
		Str("product_id", productID).
		Int("local", s.products[idx].Stock).
		Int("backend", stock).
		Msg("stock local desincronizado; se toma el valor del backend")
	p := s.products[idx].Clone()
	p.Stock = stock
	s.products[idx] = p
}
