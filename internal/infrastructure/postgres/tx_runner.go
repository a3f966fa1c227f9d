package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pdv-api/internal/application/store"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ store.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	cashFlowRepo repository.CashFlowRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewSaleRepository(tx), NewCashFlowRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewBackend arma el backend del Store sobre el pool. images puede ser nil.
func NewBackend(pool *pgxpool.Pool, images repository.ImageStorage) store.Backend {
	return store.Backend{
		Products: NewProductRepository(pool),
		Sales:    NewSaleRepository(pool),
		CashFlow: NewCashFlowRepository(pool),
		Tx:       NewTxRunner(pool),
		Images:   images,
	}
}
