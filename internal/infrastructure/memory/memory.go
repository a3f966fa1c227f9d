// Package memory implementa el backend en proceso (modo desarrollo y pruebas).
// Las transacciones trabajan sobre una copia del dataset y la publican solo en Commit.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/pdv-api/internal/application/store"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ store.TxRunner = (*DB)(nil)

type dataset struct {
	products map[string]*entity.Product
	sales    map[string]*entity.Sale
	flows    map[string]*entity.CashFlowEntry
}

func newDataset() *dataset {
	return &dataset{
		products: map[string]*entity.Product{},
		sales:    map[string]*entity.Sale{},
		flows:    map[string]*entity.CashFlowEntry{},
	}
}

func (d *dataset) clone() *dataset {
	cp := newDataset()
	for k, v := range d.products {
		cp.products[k] = v.Clone()
	}
	for k, v := range d.sales {
		cp.sales[k] = v.Clone()
	}
	for k, v := range d.flows {
		e := *v
		cp.flows[k] = &e
	}
	return cp
}

// accessor ejecuta fn sobre el dataset (con lock para el DB, sin lock dentro de una tx).
type accessor func(fn func(d *dataset) error) error

// DB almacén en memoria.
type DB struct {
	mu   sync.Mutex
	data *dataset
}

// New crea un DB vacío.
func New() *DB {
	return &DB{data: newDataset()}
}

func (db *DB) access(fn func(d *dataset) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(db.data)
}

// Products repositorio de productos fuera de transacción.
func (db *DB) Products() *ProductRepo { return &ProductRepo{with: db.access} }

// Sales repositorio de ventas fuera de transacción.
func (db *DB) Sales() *SaleRepo { return &SaleRepo{with: db.access} }

// CashFlow repositorio de flujo de caja fuera de transacción.
func (db *DB) CashFlow() *CashFlowRepo { return &CashFlowRepo{with: db.access} }

// RunSale ejecuta fn sobre una copia del dataset; si fn no falla la copia reemplaza al original.
func (db *DB) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	cashFlowRepo repository.CashFlowRepository,
) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := db.data.clone()
	with := func(f func(d *dataset) error) error { return f(tx) }
	if err := fn(&ProductRepo{with: with}, &SaleRepo{with: with}, &CashFlowRepo{with: with}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	db.data = tx
	return nil
}

// Backend arma el backend del Store sobre este DB. images puede ser nil.
func (db *DB) Backend(images repository.ImageStorage) store.Backend {
	return store.Backend{
		Products: db.Products(),
		Sales:    db.Sales(),
		CashFlow: db.CashFlow(),
		Tx:       db,
		Images:   images,
	}
}
