package dto

// ErrorResponse cuerpo de error HTTP. Details se omite si está vacío (p. ej. stock insuficiente).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// InsufficientStockDetails detalle de ErrorResponse para INSUFFICIENT_STOCK.
type InsufficientStockDetails struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}
