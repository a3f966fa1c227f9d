package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/store"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

// CartHandler carrito del PDV. Los precios se calculan con ?payment_method=&card_type=
// (por defecto contado).
type CartHandler struct {
	store *store.Store
}

func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{store: s}
}

func (h *CartHandler) respond(c *fiber.Ctx, lines []pos.CartLine) error {
	method := c.Query("payment_method", entity.PaymentCash)
	return c.JSON(dto.NewCartResponse(lines, method, c.Query("card_type")))
}

// Get GET /api/cart
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return h.respond(c, h.store.Cart())
}

// AddItem POST /api/cart/items: suma una unidad del producto.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil || in.ProductID == "" {
		return badBody(c)
	}
	lines, err := h.store.AddToCart(in.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return h.respond(c, lines)
}

// SetQuantity PUT /api/cart/items/:productId
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return h.respond(c, h.store.SetCartQuantity(c.Params("productId"), in.Quantity))
}

// RemoveItem DELETE /api/cart/items/:productId
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	return h.respond(c, h.store.RemoveFromCart(c.Params("productId")))
}

// Clear DELETE /api/cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.store.ClearCart()
	return h.respond(c, nil)
}
