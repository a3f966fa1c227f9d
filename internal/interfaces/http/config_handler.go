package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/settings"
)

// ConfigHandler configuración y tema de la tienda.
type ConfigHandler struct {
	settings *settings.Service
}

func NewConfigHandler(s *settings.Service) *ConfigHandler {
	return &ConfigHandler{settings: s}
}

// Get GET /api/config
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.NewConfigResponse(h.settings.Get()))
}

// Update PATCH /api/config: merge superficial, solo los campos enviados.
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cfg, err := h.settings.Update(c.UserContext(), in.Patch())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewConfigResponse(cfg))
}

// ToggleTheme POST /api/config/theme/toggle
func (h *ConfigHandler) ToggleTheme(c *fiber.Ctx) error {
	cfg, err := h.settings.ToggleTheme(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewConfigResponse(cfg))
}
