package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/analytics"
	"github.com/jhoicas/pdv-api/internal/application/auth"
	"github.com/jhoicas/pdv-api/internal/application/receipt"
	"github.com/jhoicas/pdv-api/internal/application/settings"
	"github.com/jhoicas/pdv-api/internal/application/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       *store.Store
	Settings    *settings.Service
	Dashboard   *analytics.DashboardUseCase
	Receipt     *receipt.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	ServiceName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/session", authHandler.Session)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Store, deps.Settings)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/image", productHandler.UploadImage)

	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.Store)
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:productId", cartHandler.SetQuantity)
	cart.Delete("/items/:productId", cartHandler.RemoveItem)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.Store, deps.Receipt)
	sales.Post("/", saleHandler.Finalize)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", saleHandler.Delete)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	cashFlow := protected.Group("/cash-flow")
	cashFlowHandler := NewCashFlowHandler(deps.Store)
	cashFlow.Get("/", cashFlowHandler.List)
	cashFlow.Post("/", cashFlowHandler.Create)
	cashFlow.Get("/balance", cashFlowHandler.Balance)
	cashFlow.Delete("/:id", cashFlowHandler.Delete)

	config := protected.Group("/config")
	configHandler := NewConfigHandler(deps.Settings)
	config.Get("/", configHandler.Get)
	config.Patch("/", configHandler.Update)
	config.Post("/theme/toggle", configHandler.ToggleTheme)

	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
