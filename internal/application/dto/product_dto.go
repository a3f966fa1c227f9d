package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// ProductRequest entrada para crear o reemplazar un producto.
type ProductRequest struct {
	Name             string           `json:"name"`
	Price            decimal.Decimal  `json:"price"`
	InstallmentPrice *decimal.Decimal `json:"installment_price"`
	Category         string           `json:"category"`
	Stock            int              `json:"stock"`
	ImageURL         string           `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string           `json:"id"`
	SKUNumber        int64            `json:"sku_number"`
	Name             string           `json:"name"`
	Price            decimal.Decimal  `json:"price"`
	InstallmentPrice *decimal.Decimal `json:"installment_price,omitempty"`
	Category         string           `json:"category"`
	Stock            int              `json:"stock"`
	ImageURL         string           `json:"image_url,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse mapea la entidad a la respuesta.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		SKUNumber:        p.SKUNumber,
		Name:             p.Name,
		Price:            p.Price,
		InstallmentPrice: p.InstallmentPrice,
		Category:         p.Category,
		Stock:            p.Stock,
		ImageURL:         p.ImageURL,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// NewProductListResponse mapea una lista de productos.
func NewProductListResponse(list []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, NewProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}
