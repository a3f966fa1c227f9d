package repository

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// CashFlowRepository persistencia del flujo de caja.
type CashFlowRepository interface {
	Create(ctx context.Context, entry *entity.CashFlowEntry) error
	GetByID(ctx context.Context, id string) (*entity.CashFlowEntry, error)
	// List devuelve los movimientos ordenados por fecha descendente.
	List(ctx context.Context) ([]*entity.CashFlowEntry, error)
	Delete(ctx context.Context, id string) error
}
