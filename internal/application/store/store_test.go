package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/application/store"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
	"github.com/jhoicas/pdv-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var errBackendDown = errors.New("backend caído")

// flakyTx TxRunner que falla a demanda después de ejecutar fn (simula fallo en Commit).
type flakyTx struct {
	inner store.TxRunner
	fail  bool
}

func (f *flakyTx) RunSale(ctx context.Context, fn func(repository.ProductRepository, repository.SaleRepository, repository.CashFlowRepository) error) error {
	if f.fail {
		return fmt.Errorf("commit transaction: %w", errBackendDown)
	}
	return f.inner.RunSale(ctx, fn)
}

// flakyCashFlow repositorio que falla en escrituras cuando fail = true.
type flakyCashFlow struct {
	repository.CashFlowRepository
	fail bool
}

func (f *flakyCashFlow) Create(ctx context.Context, e *entity.CashFlowEntry) error {
	if f.fail {
		return errBackendDown
	}
	return f.CashFlowRepository.Create(ctx, e)
}

func (f *flakyCashFlow) Delete(ctx context.Context, id string) error {
	if f.fail {
		return errBackendDown
	}
	return f.CashFlowRepository.Delete(ctx, id)
}

// slowProducts bloquea Create hasta que el contexto expira.
type slowProducts struct {
	repository.ProductRepository
}

func (s *slowProducts) Create(ctx context.Context, _ *entity.Product) error {
	<-ctx.Done()
	return fmt.Errorf("insert product: %w", ctx.Err())
}

// checkViolationTx entrega a fn un repositorio cuyo AdjustStock falla como el CHECK de
// Postgres: sin nombre ni stock disponible.
type checkViolationTx struct {
	inner store.TxRunner
}

func (c checkViolationTx) RunSale(ctx context.Context, fn func(repository.ProductRepository, repository.SaleRepository, repository.CashFlowRepository) error) error {
	return c.inner.RunSale(ctx, func(p repository.ProductRepository, s repository.SaleRepository, cf repository.CashFlowRepository) error {
		return fn(checkViolationProducts{p}, s, cf)
	})
}

type checkViolationProducts struct {
	repository.ProductRepository
}

func (checkViolationProducts) AdjustStock(_ context.Context, id string, delta int) error {
	return &domain.InsufficientStockError{ProductID: id, Requested: -delta}
}

type fixture struct {
	db    *memory.DB
	tx    *flakyTx
	flows *flakyCashFlow
	st    *store.Store
	seq   int
}

func newFixture(t *testing.T, restock bool) *fixture {
	t.Helper()
	f := &fixture{db: memory.New()}
	f.tx = &flakyTx{inner: f.db}
	f.flows = &flakyCashFlow{CashFlowRepository: f.db.CashFlow()}
	clock := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	f.st = store.New(store.Backend{
		Products: f.db.Products(),
		Sales:    f.db.Sales(),
		CashFlow: f.flows,
		Tx:       f.tx,
	}, store.Options{
		Timeout:         time.Second,
		RestockOnDelete: restock,
		Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
		NewID: func() string {
			f.seq++
			return fmt.Sprintf("id-%04d", f.seq)
		},
	}, zerolog.Nop())
	require.NoError(t, f.st.Load(context.Background()))
	return f
}

func (f *fixture) addProduct(t *testing.T, name string, price int64, stock int) *entity.Product {
	t.Helper()
	p, err := f.st.AddProduct(context.Background(), store.ProductInput{
		Name: name, Price: decimal.NewFromInt(price), Category: "suplementos", Stock: stock,
	})
	require.NoError(t, err)
	return p
}

// snapshot estado observable (local y backend) para verificar ausencia de efectos parciales.
type snapshot struct {
	products []*entity.Product
	sales    []*entity.Sale
	flows    []*entity.CashFlowEntry
	dbProds  []*entity.Product
	dbSales  []*entity.Sale
	dbFlows  []*entity.CashFlowEntry
}

func (f *fixture) snapshot(t *testing.T) snapshot {
	t.Helper()
	ctx := context.Background()
	dbProds, err := f.db.Products().List(ctx)
	require.NoError(t, err)
	dbSales, err := f.db.Sales().List(ctx)
	require.NoError(t, err)
	dbFlows, err := f.db.CashFlow().List(ctx)
	require.NoError(t, err)
	return snapshot{
		products: f.st.ListProducts("", ""),
		sales:    f.st.ListSales(store.SaleFilter{}),
		flows:    f.st.ListCashFlow(""),
		dbProds:  dbProds,
		dbSales:  dbSales,
		dbFlows:  dbFlows,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_AsignaIDUnicoYPersiste(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 120, 10)
	b := f.addProduct(t, "Creatina", 80, 5)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotZero(t, a.SKUNumber)

	list := f.st.ListProducts("", "")
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID, "más reciente primero")

	stored, err := f.db.Products().GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Whey", stored.Name)
}

func TestAddProduct_ValidaEntrada(t *testing.T) {
	f := newFixture(t, false)
	neg := decimal.NewFromInt(-1)
	cases := []store.ProductInput{
		{Name: "", Price: decimal.NewFromInt(1)},
		{Name: "x", Price: decimal.NewFromInt(-1)},
		{Name: "x", Price: decimal.NewFromInt(1), Stock: -1},
		{Name: "x", Price: decimal.NewFromInt(1), InstallmentPrice: &neg},
	}
	for _, in := range cases {
		_, err := f.st.AddProduct(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, f.st.ListProducts("", ""))
}

func TestAddProduct_MontosFueraDeRango(t *testing.T) {
	f := newFixture(t, false)
	frac := decimal.RequireFromString("1.001")
	cases := []store.ProductInput{
		{Name: "x", Price: decimal.RequireFromString("10.005")},
		{Name: "x", Price: decimal.New(1, 10)},
		{Name: "x", Price: decimal.NewFromInt(1), InstallmentPrice: &frac},
	}
	for _, in := range cases {
		_, err := f.st.AddProduct(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in.Price.String())
	}
	assert.Empty(t, f.st.ListProducts("", ""))

	p, err := f.st.AddProduct(context.Background(), store.ProductInput{Name: "x", Price: decimal.RequireFromString("9999999999.99")})
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", p.Price.StringFixed(2))
}

func TestUpdateProduct_SoloStock_ConservaResto(t *testing.T) {
	f := newFixture(t, false)
	p := f.addProduct(t, "Whey", 120, 10)

	changed := p.Clone()
	changed.Stock = 42
	out, err := f.st.UpdateProduct(context.Background(), changed)
	require.NoError(t, err)

	assert.Equal(t, 42, out.Stock)
	assert.Equal(t, p.ID, out.ID)
	assert.Equal(t, p.SKUNumber, out.SKUNumber)
	assert.Equal(t, p.Name, out.Name)
	assert.True(t, p.Price.Equal(out.Price))
	assert.Equal(t, p.InstallmentPrice, out.InstallmentPrice)
	assert.Equal(t, p.Category, out.Category)
	assert.Equal(t, p.ImageURL, out.ImageURL)
	assert.Equal(t, p.CreatedAt, out.CreatedAt)
}

func TestUpdateYDeleteProduct_Inexistente_NotFound(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.st.UpdateProduct(context.Background(), &entity.Product{ID: "nope", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.st.DeleteProduct(context.Background(), "nope"), domain.ErrNotFound)
}

func TestDeleteProduct_QuitaDelCarrito(t *testing.T) {
	f := newFixture(t, false)
	p := f.addProduct(t, "Whey", 120, 10)
	_, err := f.st.AddToCart(p.ID)
	require.NoError(t, err)

	require.NoError(t, f.st.DeleteProduct(context.Background(), p.ID))
	assert.Empty(t, f.st.Cart())
	_, err = f.st.GetProduct(p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddProduct_TimeoutDelBackend_Reintentable(t *testing.T) {
	db := memory.New()
	st := store.New(store.Backend{
		Products: &slowProducts{ProductRepository: db.Products()},
		Sales:    db.Sales(),
		CashFlow: db.CashFlow(),
		Tx:       db,
	}, store.Options{Timeout: 20 * time.Millisecond}, zerolog.Nop())

	_, err := st.AddProduct(context.Background(), store.ProductInput{Name: "x", Price: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, domain.ErrExternalWrite)
	assert.True(t, domain.IsRetryable(err))
	assert.Empty(t, st.ListProducts("", ""), "sin cambios locales si el backend falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToCart_ProductoInexistente(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.st.AddToCart("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProduct_RefrescaSnapshotDelCarrito(t *testing.T) {
	f := newFixture(t, false)
	p := f.addProduct(t, "Whey", 120, 10)
	_, err := f.st.AddToCart(p.ID)
	require.NoError(t, err)

	changed := p.Clone()
	changed.Price = decimal.NewFromInt(99)
	_, err = f.st.UpdateProduct(context.Background(), changed)
	require.NoError(t, err)

	assert.True(t, f.st.CartTotal(entity.PaymentCash, "").Equal(decimal.NewFromInt(99)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalización de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizeSale_StockExacto(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 2)
	_, err := f.st.AddToCart(a.ID)
	require.NoError(t, err)
	f.st.SetCartQuantity(a.ID, 2)

	sale, err := f.st.FinalizeSale(context.Background(), entity.PaymentCash, "")
	require.NoError(t, err)

	got, err := f.st.GetProduct(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	sales := f.st.ListSales(store.SaleFilter{})
	require.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)

	flows := f.st.ListCashFlow("")
	require.Len(t, flows, 1)
	assert.Equal(t, entity.SaleFlowID(sale.ID), flows[0].ID)
	assert.Equal(t, entity.CashFlowSale, flows[0].Type)
	assert.True(t, flows[0].Amount.Equal(sale.Total))
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(50)))

	assert.Empty(t, f.st.Cart(), "el carrito se vacía")

	dbProd, err := f.db.Products().GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, dbProd.Stock, "el backend también descuenta")
	dbFlow, err := f.db.CashFlow().GetByID(context.Background(), entity.SaleFlowID(sale.ID))
	require.NoError(t, err)
	assert.NotNil(t, dbFlow)
}

func TestFinalizeSale_CarritoVacio(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.st.FinalizeSale(context.Background(), entity.PaymentCash, "")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestFinalizeSale_StockInsuficiente_SinEfectosParciales(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 5)
	b := f.addProduct(t, "Creatina", 10, 1)
	_, err := f.st.AddToCart(a.ID)
	require.NoError(t, err)
	_, err = f.st.AddToCart(b.ID)
	require.NoError(t, err)
	f.st.SetCartQuantity(b.ID, 2)

	before := f.snapshot(t)
	_, err = f.st.FinalizeSale(context.Background(), entity.PaymentPix, "")

	var se *domain.InsufficientStockError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, b.ID, se.ProductID)
	assert.Equal(t, "Creatina", se.ProductName)
	assert.Equal(t, 2, se.Requested)
	assert.Equal(t, 1, se.Available)

	assert.Equal(t, before, f.snapshot(t))
	assert.Len(t, f.st.Cart(), 2, "el carrito se conserva para corregir")
}

func TestFinalizeSale_StockDesincronizado_DetectadoEnTransaccion(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 3)
	_, err := f.st.AddToCart(a.ID)
	require.NoError(t, err)
	f.st.SetCartQuantity(a.ID, 3)

	// Otro proceso vendió unidades directamente en el backend.
	require.NoError(t, f.db.Products().AdjustStock(context.Background(), a.ID, -2))

	_, err = f.st.FinalizeSale(context.Background(), entity.PaymentCash, "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, f.st.ListSales(store.SaleFilter{}))

	got, err := f.st.GetProduct(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock, "el stock local se alinea con el backend")
}

func TestFinalizeSale_TotalFueraDeRango(t *testing.T) {
	f := newFixture(t, false)
	a, err := f.st.AddProduct(context.Background(), store.ProductInput{
		Name: "Lote", Price: decimal.RequireFromString("9999999999.99"), Stock: 2,
	})
	require.NoError(t, err)
	_, err = f.st.AddToCart(a.ID)
	require.NoError(t, err)
	f.st.SetCartQuantity(a.ID, 2)

	_, err = f.st.FinalizeSale(context.Background(), entity.PaymentCash, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.st.ListSales(store.SaleFilter{}))
	assert.Len(t, f.st.Cart(), 1)
}

func TestFinalizeSale_CheckDelBackend_UsaLecturaBloqueada(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 10)
	_, err := f.st.AddToCart(a.ID)
	require.NoError(t, err)
	f.tx.inner = checkViolationTx{inner: f.db}

	_, err = f.st.FinalizeSale(context.Background(), entity.PaymentCash, "")
	var se *domain.InsufficientStockError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Whey", se.ProductName)
	assert.Equal(t, 1, se.Requested)
	assert.Equal(t, 10, se.Available)

	got, err := f.st.GetProduct(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock, "el stock local no se pone en cero")
}

func TestFinalizeSale_FalloDelBackend_NoModificaEstado(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 5)
	_, err := f.st.AddToCart(a.ID)
	require.NoError(t, err)

	before := f.snapshot(t)
	f.tx.fail = true
	_, err = f.st.FinalizeSale(context.Background(), entity.PaymentCash, "")
	require.ErrorIs(t, err, domain.ErrExternalWrite)
	assert.ErrorIs(t, err, errBackendDown)
	assert.False(t, domain.IsRetryable(err))

	assert.Equal(t, before, f.snapshot(t))
	assert.Len(t, f.st.Cart(), 1)
}

func TestFinalizeSale_ConcurrenteNoSobrevende(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 1)

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.st.AddToCart(a.ID); err != nil {
				results <- err
				return
			}
			f.st.SetCartQuantity(a.ID, 1)
			_, err := f.st.FinalizeSale(context.Background(), entity.PaymentCash, "")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	ok := 0
	for err := range results {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 1, ok, "solo una venta puede pasar con stock 1")
	got, err := f.st.GetProduct(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación de ventas
// ──────────────────────────────────────────────────────────────────────────────

func sellOne(t *testing.T, f *fixture, p *entity.Product, qty int) *entity.Sale {
	t.Helper()
	_, err := f.st.AddToCart(p.ID)
	require.NoError(t, err)
	f.st.SetCartQuantity(p.ID, qty)
	sale, err := f.st.FinalizeSale(context.Background(), entity.PaymentCash, "")
	require.NoError(t, err)
	return sale
}

func TestDeleteSale_EliminaSoloSuMovimiento(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 10)
	s1 := sellOne(t, f, a, 1)
	s2 := sellOne(t, f, a, 2)
	manual, err := f.st.AddCashFlow(context.Background(), "Aporte", entity.CashFlowIncome, decimal.NewFromInt(100), "")
	require.NoError(t, err)

	require.NoError(t, f.st.DeleteSale(context.Background(), s1.ID))

	ids := map[string]bool{}
	for _, e := range f.st.ListCashFlow("") {
		ids[e.ID] = true
	}
	assert.Equal(t, map[string]bool{entity.SaleFlowID(s2.ID): true, manual.ID: true}, ids)

	_, err = f.st.GetSale(s1.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.st.GetProduct(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock, "sin reposición por defecto en este fixture")
}

func TestDeleteSale_ConReposicion(t *testing.T) {
	f := newFixture(t, true)
	a := f.addProduct(t, "Whey", 25, 10)
	s := sellOne(t, f, a, 4)

	require.NoError(t, f.st.DeleteSale(context.Background(), s.ID))

	got, err := f.st.GetProduct(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)
	dbProd, err := f.db.Products().GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, dbProd.Stock)
}

func TestDeleteSale_MovimientoAusenteEnBackend(t *testing.T) {
	f := newFixture(t, true)
	a := f.addProduct(t, "Whey", 25, 10)
	s := sellOne(t, f, a, 2)
	require.NoError(t, f.db.CashFlow().Delete(context.Background(), entity.SaleFlowID(s.ID)))

	require.NoError(t, f.st.DeleteSale(context.Background(), s.ID))
	assert.Empty(t, f.st.ListCashFlow(""))
	got, err := f.st.GetProduct(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)
}

func TestDeleteSale_Inexistente(t *testing.T) {
	f := newFixture(t, false)
	assert.ErrorIs(t, f.st.DeleteSale(context.Background(), "nope"), domain.ErrNotFound)
}

func TestDeleteSale_FalloDelBackend_ConservaVentaYMovimiento(t *testing.T) {
	f := newFixture(t, true)
	a := f.addProduct(t, "Whey", 25, 10)
	s := sellOne(t, f, a, 1)

	f.tx.fail = true
	err := f.st.DeleteSale(context.Background(), s.ID)
	require.ErrorIs(t, err, domain.ErrExternalWrite)

	_, err = f.st.GetSale(s.ID)
	assert.NoError(t, err)
	assert.Len(t, f.st.ListCashFlow(entity.CashFlowSale), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de caja
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteCashFlow_DeVenta_Forbidden(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 10)
	s := sellOne(t, f, a, 1)

	err := f.st.DeleteCashFlow(context.Background(), entity.SaleFlowID(s.ID))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, f.st.ListCashFlow(""), 1, "el movimiento permanece")
}

func TestCashFlow_Balance(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	_, err := f.st.AddCashFlow(ctx, "Aporte", entity.CashFlowIncome, decimal.NewFromInt(100), "")
	require.NoError(t, err)
	_, err = f.st.AddCashFlow(ctx, "Frete", entity.CashFlowExpense, decimal.NewFromInt(30), "logística")
	require.NoError(t, err)
	a := f.addProduct(t, "Whey", 50, 10)
	sellOne(t, f, a, 1)

	assert.True(t, f.st.Balance().Equal(decimal.NewFromInt(120)))
}

func TestAddCashFlow_Invalido(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.st.AddCashFlow(context.Background(), "x", entity.CashFlowSale, decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.st.AddCashFlow(context.Background(), "x", entity.CashFlowIncome, decimal.Zero, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddCashFlow_MontoFueraDeRango(t *testing.T) {
	f := newFixture(t, false)
	for _, v := range []string{"0.001", "10.005", "10000000000"} {
		_, err := f.st.AddCashFlow(context.Background(), "x", entity.CashFlowIncome, decimal.RequireFromString(v), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, v)
	}
	assert.Empty(t, f.st.ListCashFlow(""))
}

func TestCashFlow_FalloDelBackend(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	e, err := f.st.AddCashFlow(ctx, "Aporte", entity.CashFlowIncome, decimal.NewFromInt(100), "")
	require.NoError(t, err)

	f.flows.fail = true
	_, err = f.st.AddCashFlow(ctx, "Outro", entity.CashFlowIncome, decimal.NewFromInt(5), "")
	assert.ErrorIs(t, err, domain.ErrExternalWrite)
	assert.ErrorIs(t, f.st.DeleteCashFlow(ctx, e.ID), domain.ErrExternalWrite)
	assert.Len(t, f.st.ListCashFlow(""), 1)
	assert.True(t, f.st.Balance().Equal(decimal.NewFromInt(100)))

	f.flows.fail = false
	require.NoError(t, f.st.DeleteCashFlow(ctx, e.ID))
	assert.Empty(t, f.st.ListCashFlow(""))
}

func TestLoad_RecuperaEstadoDelBackend(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 10)
	sellOne(t, f, a, 3)

	fresh := store.New(store.Backend{
		Products: f.db.Products(), Sales: f.db.Sales(), CashFlow: f.db.CashFlow(), Tx: f.db,
	}, store.Options{}, zerolog.Nop())
	require.NoError(t, fresh.Load(context.Background()))

	assert.Len(t, fresh.ListSales(store.SaleFilter{}), 1)
	assert.Len(t, fresh.ListCashFlow(""), 1)
	got, err := fresh.GetProduct(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)
}

func TestListSales_Filtro(t *testing.T) {
	f := newFixture(t, false)
	a := f.addProduct(t, "Whey", 25, 10)
	s1 := sellOne(t, f, a, 1)
	_, err := f.st.AddToCart(a.ID)
	require.NoError(t, err)
	s2, err := f.st.FinalizeSale(context.Background(), entity.PaymentCard, entity.CardDebit)
	require.NoError(t, err)

	cards := f.st.ListSales(store.SaleFilter{PaymentMethod: entity.PaymentCard})
	require.Len(t, cards, 1)
	assert.Equal(t, s2.ID, cards[0].ID)

	early := f.st.ListSales(store.SaleFilter{To: s1.Date})
	require.Len(t, early, 1)
	assert.Equal(t, s1.ID, early[0].ID)
}
