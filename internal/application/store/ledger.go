package store

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

// AddCashFlow registra un movimiento manual (income | expense) con monto > 0.
func (s *Store) AddCashFlow(ctx context.Context, description, typ string, amount decimal.Decimal, category string) (*entity.CashFlowEntry, error) {
	description = strings.TrimSpace(description)
	if err := pos.ValidateManualEntry(description, typ, amount); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &entity.CashFlowEntry{
		ID:          s.opts.NewID(),
		Date:        s.opts.Now(),
		Description: description,
		Type:        typ,
		Amount:      amount,
		Category:    category,
	}
	if err := s.external(ctx, "crear movimiento de caja", func(ctx context.Context) error {
		return s.backend.CashFlow.Create(ctx, entry)
	}); err != nil {
		return nil, err
	}
	s.cashFlow = append([]*entity.CashFlowEntry{entry}, s.cashFlow...)
	cp := *entry
	return &cp, nil
}

// DeleteCashFlow elimina un movimiento manual. Los movimientos de venta devuelven
// domain.ErrForbidden: se eliminan solo a través de DeleteSale.
func (s *Store) DeleteCashFlow(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cashFlowIndex(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	if s.cashFlow[idx].IsSaleDerived() {
		return domain.ErrForbidden
	}
	if err := s.external(ctx, "eliminar movimiento de caja", func(ctx context.Context) error {
		return s.backend.CashFlow.Delete(ctx, id)
	}); err != nil {
		return err
	}
	s.cashFlow = append(s.cashFlow[:idx:idx], s.cashFlow[idx+1:]...)
	return nil
}

// ListCashFlow copias de los movimientos (más recientes primero). typ vacío = todos.
func (s *Store) ListCashFlow(typ string) []*entity.CashFlowEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.CashFlowEntry, 0, len(s.cashFlow))
	for _, e := range s.cashFlow {
		if typ != "" && e.Type != typ {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out
}

// Balance saldo de caja recalculado sobre todos los movimientos.
func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pos.Balance(s.cashFlow)
}
