package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/store"
)

// CashFlowHandler flujo de caja.
type CashFlowHandler struct {
	store *store.Store
}

func NewCashFlowHandler(s *store.Store) *CashFlowHandler {
	return &CashFlowHandler{store: s}
}

// List GET /api/cash-flow?type=income|expense|sale. El saldo siempre considera todos los movimientos.
func (h *CashFlowHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NewCashFlowListResponse(h.store.ListCashFlow(c.Query("type")), h.store.Balance()))
}

// Create POST /api/cash-flow (solo income | expense).
func (h *CashFlowHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashFlowRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	e, err := h.store.AddCashFlow(c.UserContext(), in.Description, in.Type, in.Amount, in.Category)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCashFlowResponse(e))
}

// Delete DELETE /api/cash-flow/:id. Un movimiento de venta responde 403.
func (h *CashFlowHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteCashFlow(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balance GET /api/cash-flow/balance
func (h *CashFlowHandler) Balance(c *fiber.Ctx) error {
	return c.JSON(dto.BalanceResponse{Balance: h.store.Balance()})
}
