package repository

import "context"

// ConfigRepository key-value externo donde se guarda StoreConfig serializado.
// Get devuelve found=false si la clave no existe.
type ConfigRepository interface {
	Get(ctx context.Context) (payload []byte, found bool, err error)
	Set(ctx context.Context, payload []byte) error
}
