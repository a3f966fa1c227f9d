package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo key-value en memoria para StoreConfig (cuando no hay Redis configurado).
type ConfigRepo struct {
	mu      sync.Mutex
	payload []byte
}

// NewConfigRepo crea el repositorio vacío.
func NewConfigRepo() *ConfigRepo { return &ConfigRepo{} }

func (r *ConfigRepo) Get(_ context.Context) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.payload == nil {
		return nil, false, nil
	}
	return append([]byte(nil), r.payload...), true, nil
}

func (r *ConfigRepo) Set(_ context.Context, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = append([]byte(nil), payload...)
	return nil
}
