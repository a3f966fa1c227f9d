package store

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del backend, pasando repositorios atados a esa tx.
// Garantiza atomicidad para la finalización y eliminación de ventas.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		cashFlowRepo repository.CashFlowRepository,
	) error) error
}

// Backend agrupa los puertos externos que usa el Store.
type Backend struct {
	Products repository.ProductRepository
	Sales    repository.SaleRepository
	CashFlow repository.CashFlowRepository
	Tx       TxRunner
	Images   repository.ImageStorage
}
