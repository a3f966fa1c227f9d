package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/pdv-api/internal/application/analytics"
	"github.com/jhoicas/pdv-api/internal/application/auth"
	"github.com/jhoicas/pdv-api/internal/application/receipt"
	"github.com/jhoicas/pdv-api/internal/application/settings"
	"github.com/jhoicas/pdv-api/internal/application/store"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
	"github.com/jhoicas/pdv-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/pdv-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pdv-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/pdv-api/internal/infrastructure/redis"
	"github.com/jhoicas/pdv-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/pdv-api/internal/interfaces/http"
	"github.com/jhoicas/pdv-api/pkg/config"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.App.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	images := storage.NewImageStorage(cfg.Storage.Dir, cfg.Storage.PublicURL)

	// Backend del estado del PDV
	var backend store.Backend
	switch cfg.App.Backend {
	case config.BackendMemory:
		log.Warn().Msg("backend en memoria: los datos se pierden al reiniciar")
		backend = memory.New().Backend(images)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema PostgreSQL")
		}
		backend = postgres.NewBackend(pool, images)
	}

	posStore := store.New(backend, store.Options{
		Timeout:         cfg.Store.BackendTimeout,
		RestockOnDelete: cfg.Store.RestockOnDelete,
	}, log.Zerolog())
	if err := posStore.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del estado")
	}

	// Configuración de la tienda: Redis si está configurado, si no en memoria.
	var configRepo repository.ConfigRepository
	if cfg.Redis.Addr != "" {
		client := infraredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no responde; se usará la configuración por defecto")
		}
		configRepo = infraredis.NewConfigRepository(client, cfg.Redis.ConfigKey)
	} else {
		configRepo = memory.NewConfigRepo()
	}
	settingsSvc := settings.NewService(configRepo, cfg.Store.BackendTimeout, log.Zerolog())
	storeCfg := settingsSvc.Load(ctx)
	log.Info().Str("store", storeCfg.Name).Str("theme", storeCfg.Theme).Msg("configuración cargada")

	dashboardUC := appanalytics.NewDashboardUseCase(posStore, settingsSvc)
	receiptUC := receipt.NewUseCase(posStore, settingsSvc, infrapdf.NewMarotoReceiptGenerator(), nil)
	authUC, err := auth.NewAuthUseCase(cfg.App.AccessCode, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("código de acceso")
	}
	if cfg.App.AccessCode == "" {
		log.Warn().Msg("ACCESS_CODE vacío: el login está deshabilitado")
	}

	httpLog := log.Component("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    6 << 20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				httpLog.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			}
			return c.Status(code).JSON(fiber.Map{"code": "HTTP_ERROR", "message": err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(cors.New())
	if cfg.App.Env == "development" {
		app.Use(fiberlogger.New())
	}

	// Imágenes de productos servidas desde STORAGE_DIR cuando la URL pública es local.
	if strings.HasPrefix(cfg.Storage.PublicURL, "/") {
		app.Static(cfg.Storage.PublicURL, cfg.Storage.Dir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       posStore,
		Settings:    settingsSvc,
		Dashboard:   dashboardUC,
		Receipt:     receiptUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		ServiceName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
