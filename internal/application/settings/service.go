// Package settings gestiona la configuración de la tienda (nombre, logo, tema).
// Se carga una vez al iniciar y se persiste en el key-value externo en cada cambio.
package settings

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// Service estado de configuración (singleton por proceso, inyectado desde main).
type Service struct {
	mu      sync.RWMutex
	repo    repository.ConfigRepository
	cfg     entity.StoreConfig
	timeout time.Duration
	log     zerolog.Logger
}

// NewService construye el servicio con la configuración por defecto.
func NewService(repo repository.ConfigRepository, timeout time.Duration, log zerolog.Logger) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		repo:    repo,
		cfg:     entity.DefaultStoreConfig(),
		timeout: timeout,
		log:     log.With().Str("component", "settings").Logger(),
	}
}

// storedConfig acepta también "storeName", usado por versiones anteriores del payload.
// Name es puntero para distinguir la clave ausente de un nombre vacío.
type storedConfig struct {
	entity.StoreConfig
	Name      *string `json:"name"`
	StoreName string  `json:"storeName,omitempty"`
}

// Load lee la configuración persistida. Nunca falla: si no existe, no se puede leer o el
// payload es inválido se usa la configuración por defecto y se registra el motivo.
func (s *Service) Load(ctx context.Context) entity.StoreConfig {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cfg := entity.DefaultStoreConfig()
	payload, found, err := s.repo.Get(ctx)
	switch {
	case err != nil:
		s.log.Error().Err(err).Msg("no se pudo leer la configuración; se usa la configuración por defecto")
	case !found:
		s.log.Info().Msg("sin configuración persistida; se usa la configuración por defecto")
	default:
		if decoded, ok := decode(payload); ok {
			cfg = decoded
		} else {
			s.log.Warn().Int("bytes", len(payload)).Msg("configuración persistida inválida; se usa la configuración por defecto")
		}
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return cfg
}

func decode(payload []byte) (entity.StoreConfig, bool) {
	stored := storedConfig{StoreConfig: entity.DefaultStoreConfig()}
	if err := json.Unmarshal(payload, &stored); err != nil {
		return entity.StoreConfig{}, false
	}
	cfg := stored.StoreConfig
	switch {
	case stored.Name != nil:
		cfg.Name = *stored.Name
	case stored.StoreName != "":
		cfg.Name = stored.StoreName
	}
	if !cfg.Valid() {
		return entity.StoreConfig{}, false
	}
	return cfg, true
}

// Get devuelve la configuración actual.
func (s *Service) Get() entity.StoreConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update aplica un merge superficial, persiste y solo entonces publica el cambio.
func (s *Service) Update(ctx context.Context, patch entity.StoreConfigPatch) (entity.StoreConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx, s.cfg.Apply(patch))
}

// ToggleTheme alterna light ↔ dark.
func (s *Service) ToggleTheme(ctx context.Context) (entity.StoreConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	theme := s.cfg.ToggledTheme()
	return s.persist(ctx, s.cfg.Apply(entity.StoreConfigPatch{Theme: &theme}))
}

// persist requiere s.mu tomado.
func (s *Service) persist(ctx context.Context, next entity.StoreConfig) (entity.StoreConfig, error) {
	if !next.Valid() {
		return s.cfg, domain.ErrInvalidInput
	}
	payload, err := json.Marshal(next)
	if err != nil {
		return s.cfg, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.repo.Set(ctx, payload); err != nil {
		s.log.Error().Err(err).Msg("no se pudo guardar la configuración")
		return s.cfg, domain.NewExternalWriteError("guardar configuración", err)
	}
	s.cfg = next
	return next, nil
}
