package repository

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// SaleRepository persistencia de ventas (cabecera + ítems).
type SaleRepository interface {
	// Create guarda la venta y sus ítems.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve las ventas ordenadas por fecha descendente.
	List(ctx context.Context) ([]*entity.Sale, error)
	// Delete elimina la venta y sus ítems; domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
