package pos

import "github.com/shopspring/decimal"

// MaxAmount límite exclusivo de precios, montos y totales (columnas NUMERIC(12,2)).
var MaxAmount = decimal.New(1, 10)

// ValidAmount acepta montos no negativos, con a lo sumo dos decimales y menores que MaxAmount.
// Así el valor en memoria es exactamente el que guarda el backend.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Truncate(2)) && d.LessThan(MaxAmount)
}
