package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ repository.CashFlowRepository = (*CashFlowRepo)(nil)
)

// ProductRepo productos en memoria.
type ProductRepo struct{ with accessor }

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.with(func(d *dataset) error {
		if _, ok := d.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		d.products[product.ID] = product.Clone()
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.with(func(d *dataset) error {
		out = d.products[id].Clone()
		return nil
	})
	return out, err
}

// GetForUpdate equivale a GetByID: la transacción ya tiene acceso exclusivo.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.with(func(d *dataset) error {
		if _, ok := d.products[product.ID]; !ok {
			return domain.ErrNotFound
		}
		d.products[product.ID] = product.Clone()
		return nil
	})
}

func (r *ProductRepo) AdjustStock(_ context.Context, id string, delta int) error {
	return r.with(func(d *dataset) error {
		p, ok := d.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		if p.Stock+delta < 0 {
			return &domain.InsufficientStockError{ProductID: p.ID, ProductName: p.Name, Requested: -delta, Available: p.Stock}
		}
		p.Stock += delta
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.with(func(d *dataset) error {
		for _, p := range d.products {
			out = append(out, p.Clone())
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.with(func(d *dataset) error {
		if _, ok := d.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.products, id)
		return nil
	})
}

// SaleRepo ventas en memoria.
type SaleRepo struct{ with accessor }

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.with(func(d *dataset) error {
		if _, ok := d.sales[sale.ID]; ok {
			return domain.ErrDuplicate
		}
		d.sales[sale.ID] = sale.Clone()
		return nil
	})
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.with(func(d *dataset) error {
		out = d.sales[id].Clone()
		return nil
	})
	return out, err
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	var out []*entity.Sale
	err := r.with(func(d *dataset) error {
		for _, s := range d.sales {
			out = append(out, s.Clone())
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

func (r *SaleRepo) Delete(_ context.Context, id string) error {
	return r.with(func(d *dataset) error {
		if _, ok := d.sales[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.sales, id)
		return nil
	})
}

// CashFlowRepo flujo de caja en memoria.
type CashFlowRepo struct{ with accessor }

func (r *CashFlowRepo) Create(_ context.Context, entry *entity.CashFlowEntry) error {
	return r.with(func(d *dataset) error {
		if _, ok := d.flows[entry.ID]; ok {
			return domain.ErrDuplicate
		}
		e := *entry
		d.flows[entry.ID] = &e
		return nil
	})
}

func (r *CashFlowRepo) GetByID(_ context.Context, id string) (*entity.CashFlowEntry, error) {
	var out *entity.CashFlowEntry
	err := r.with(func(d *dataset) error {
		if e, ok := d.flows[id]; ok {
			cp := *e
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *CashFlowRepo) List(_ context.Context) ([]*entity.CashFlowEntry, error) {
	var out []*entity.CashFlowEntry
	err := r.with(func(d *dataset) error {
		for _, e := range d.flows {
			cp := *e
			out = append(out, &cp)
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

func (r *CashFlowRepo) Delete(_ context.Context, id string) error {
	return r.with(func(d *dataset) error {
		if _, ok := d.flows[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.flows, id)
		return nil
	})
}
