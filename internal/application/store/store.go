// Package store mantiene el estado en memoria del PDV (catálogo, carrito, ventas y flujo de caja)
// y aplica sus transiciones. Cada transición escribe primero en el backend y solo si tiene
// éxito modifica el estado local; todas se ejecutan bajo un único mutex.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

const defaultTimeout = 10 * time.Second

// Options ajustes del Store.
type Options struct {
	Timeout         time.Duration // límite por llamada al backend
	RestockOnDelete bool          // reponer stock al eliminar una venta
	Now             func() time.Time
	NewID           func() string
}

// Store estado del PDV. Se crea en main y se inyecta en los casos de uso y handlers.
type Store struct {
	mu      sync.Mutex
	backend Backend
	opts    Options
	log     zerolog.Logger

	products []*entity.Product // más recientes primero
	sales    []*entity.Sale
	cashFlow []*entity.CashFlowEntry
	cart     *pos.Cart
}

// New construye el Store con estado vacío; llamar Load para traer los datos del backend.
func New(backend Backend, opts Options, log zerolog.Logger) *Store {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Store{
		backend: backend,
		opts:    opts,
		log:     log.With().Str("component", "store").Logger(),
		cart:    pos.NewCart(),
	}
}

// Load reemplaza el estado local con productos, ventas y flujo de caja del backend.
// El carrito se vacía.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		products []*entity.Product
		sales    []*entity.Sale
		flows    []*entity.CashFlowEntry
	)
	err := s.external(ctx, "cargar datos", func(ctx context.Context) error {
		var err error
		if products, err = s.backend.Products.List(ctx); err != nil {
			return err
		}
		if sales, err = s.backend.Sales.List(ctx); err != nil {
			return err
		}
		flows, err = s.backend.CashFlow.List(ctx)
		return err
	})
	if err != nil {
		return err
	}
	s.products = products
	s.sales = sales
	s.cashFlow = flows
	s.cart.Clear()
	s.log.Info().
		Int("products", len(products)).
		Int("sales", len(sales)).
		Int("cash_flow", len(flows)).
		Msg("estado cargado desde el backend")
	return nil
}

// external ejecuta fn con timeout. Los errores de dominio se devuelven tal cual; el resto se
// envuelve en ExternalWriteError.
func (s *Store) external(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	err := fn(ctx)
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	s.log.Error().Err(err).Str("op", op).Msg("falló la llamada al backend")
	return domain.NewExternalWriteError(op, err)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrNotFound,
		domain.ErrInvalidInput,
		domain.ErrDuplicate,
		domain.ErrForbidden,
		domain.ErrEmptyCart,
		domain.ErrInsufficientStock,
		domain.ErrExternalWrite,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (s *Store) productIndex(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) saleIndex(id string) int {
	for i, sale := range s.sales {
		if sale.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) cashFlowIndex(id string) int {
	for i, e := range s.cashFlow {
		if e.ID == id {
			return i
		}
	}
	return -1
}
