package domain

import (
	"context"
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acción no permitida")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrExternalWrite     = errors.New("falló la escritura en el backend")
)

// InsufficientStockError indica qué producto no tiene stock suficiente para la venta.
// errors.Is(err, ErrInsufficientStock) es verdadero.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solicitado %d, disponible %d", e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// ExternalWriteError envuelve un fallo del backend (Postgres, Redis, storage).
// El estado en memoria no se modifica cuando se retorna este error.
type ExternalWriteError struct {
	Op  string
	Err error
}

func (e *ExternalWriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalWriteError) Unwrap() error { return e.Err }

func (e *ExternalWriteError) Is(target error) bool { return target == ErrExternalWrite }

// Retryable es verdadero si el backend no respondió dentro del plazo (context.DeadlineExceeded).
// Una cancelación del cliente no es reintentable.
func (e *ExternalWriteError) Retryable() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// NewExternalWriteError construye el error solo si err != nil.
func NewExternalWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ExternalWriteError{Op: op, Err: err}
}

// IsRetryable indica si err es un ExternalWriteError reintentable.
func IsRetryable(err error) bool {
	var ew *ExternalWriteError
	return errors.As(err, &ew) && ew.Retryable()
}
