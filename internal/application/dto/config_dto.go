package dto

import "github.com/jhoicas/pdv-api/internal/domain/entity"

// ConfigResponse configuración de la tienda.
type ConfigResponse struct {
	Name              string `json:"name"`
	Logo              string `json:"logo"`
	Theme             string `json:"theme"`
	Currency          string `json:"currency"`
	LowStockAlert     bool   `json:"low_stock_alert"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

// UpdateConfigRequest PATCH /api/config. Los campos ausentes no se modifican.
type UpdateConfigRequest struct {
	Name              *string `json:"name"`
	Logo              *string `json:"logo"`
	Theme             *string `json:"theme"`
	Currency          *string `json:"currency"`
	LowStockAlert     *bool   `json:"low_stock_alert"`
	LowStockThreshold *int    `json:"low_stock_threshold"`
}

// Patch convierte la petición en el patch de dominio.
func (r UpdateConfigRequest) Patch() entity.StoreConfigPatch {
	return entity.StoreConfigPatch{
		Name:              r.Name,
		Logo:              r.Logo,
		Theme:             r.Theme,
		Currency:          r.Currency,
		LowStockAlert:     r.LowStockAlert,
		LowStockThreshold: r.LowStockThreshold,
	}
}

// NewConfigResponse mapea la configuración.
func NewConfigResponse(c entity.StoreConfig) ConfigResponse {
	return ConfigResponse{
		Name:              c.Name,
		Logo:              c.Logo,
		Theme:             c.Theme,
		Currency:          c.Currency,
		LowStockAlert:     c.LowStockAlert,
		LowStockThreshold: c.LowStockThreshold,
	}
}
