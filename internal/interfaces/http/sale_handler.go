package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/receipt"
	"github.com/jhoicas/pdv-api/internal/application/store"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

// SaleHandler finalización, historial, eliminación y comprobante de ventas.
type SaleHandler struct {
	store   *store.Store
	receipt *receipt.UseCase
	now     func() time.Time
}

func NewSaleHandler(s *store.Store, r *receipt.UseCase) *SaleHandler {
	return &SaleHandler{store: s, receipt: r, now: time.Now}
}

// Finalize godoc
// @Summary      Finalizar venta con el carrito actual
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinalizeSaleRequest  true  "payment_method (cash|card|pix), card_type (debit|credit)"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Finalize(c *fiber.Ctx) error {
	var in dto.FinalizeSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sale, err := h.store.FinalizeSale(c.UserContext(), in.PaymentMethod, in.CardType)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSaleResponse(sale))
}

// List GET /api/sales?period=today|week|month|all&method=cash|card|pix
func (h *SaleHandler) List(c *fiber.Ctx) error {
	from, to, err := pos.PeriodRange(c.Query("period"), h.now())
	if err != nil {
		return writeError(c, fmt.Errorf("%w: period inválido", domain.ErrInvalidInput))
	}
	method := c.Query("method")
	switch method {
	case "", entity.PaymentCash, entity.PaymentCard, entity.PaymentPix:
	default:
		return writeError(c, fmt.Errorf("%w: method inválido", domain.ErrInvalidInput))
	}
	sales := h.store.ListSales(store.SaleFilter{From: from, To: to, PaymentMethod: method})
	return c.JSON(dto.NewSaleListResponse(sales))
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.store.GetSale(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale))
}

// Delete elimina la venta junto con su movimiento de caja.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteSale(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt GET /api/sales/:id/receipt (application/pdf).
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receipt.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
