package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// UnitPrice aplica la política de precios: el precio a plazo solo se usa con tarjeta de crédito
// y cuando el producto lo define.
func UnitPrice(p *entity.Product, method, cardType string) decimal.Decimal {
	if method == entity.PaymentCard && cardType == entity.CardCredit && p.InstallmentPrice != nil {
		return *p.InstallmentPrice
	}
	return p.Price
}

// ValidatePayment exige tipo de tarjeta con card y lo prohíbe con cash/pix.
func ValidatePayment(method, cardType string) error {
	switch method {
	case entity.PaymentCard:
		if cardType != entity.CardDebit && cardType != entity.CardCredit {
			return domain.ErrInvalidInput
		}
	case entity.PaymentCash, entity.PaymentPix:
		if cardType != "" {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
