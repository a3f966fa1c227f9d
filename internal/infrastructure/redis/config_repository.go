package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// DefaultConfigKey clave bajo la que se guarda la configuración de la tienda.
const DefaultConfigKey = "pdv:store-config"

// KVClient subconjunto de *redis.Client usado por el repositorio.
type KVClient interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

var _ repository.ConfigRepository = (*ConfigRepository)(nil)

// ConfigRepository persiste StoreConfig serializado en Redis, sin expiración.
type ConfigRepository struct {
	client KVClient
	key    string
}

// NewClient abre el cliente Redis.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewConfigRepository crea el repositorio; key vacío usa DefaultConfigKey.
func NewConfigRepository(client KVClient, key string) *ConfigRepository {
	if key == "" {
		key = DefaultConfigKey
	}
	return &ConfigRepository{client: client, key: key}
}

func (r *ConfigRepository) Get(ctx context.Context) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return val, true, nil
}

func (r *ConfigRepository) Set(ctx context.Context, payload []byte) error {
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
