package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/pkg/money"
)

// Receipt datos ya formateados que el generador vuelca al PDF.
type Receipt struct {
	StoreName    string
	StoreLogo    string
	SaleID       string
	DateTime     string
	PaymentLabel string
	Lines        []Line
	Total        string
	GeneratedAt  string
}

// Line ítem del comprobante.
type Line struct {
	Name     string
	Detail   string // "R$ 10,00 x 2"
	Category string
	Subtotal string
}

// PDFGenerator puerto de salida para la representación en PDF.
type PDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, r Receipt) ([]byte, error)
}

// SaleReader fuente de ventas (el Store).
type SaleReader interface {
	GetSale(id string) (*entity.Sale, error)
}

// ConfigReader configuración vigente de la tienda.
type ConfigReader interface {
	Get() entity.StoreConfig
}

// UseCase genera el comprobante de una venta. No tiene valor fiscal.
type UseCase struct {
	sales     SaleReader
	cfg       ConfigReader
	generator PDFGenerator
	now       func() time.Time
	loc       *time.Location
}

// NewUseCase construye el caso de uso. loc nil = hora local del proceso.
func NewUseCase(sales SaleReader, cfg ConfigReader, generator PDFGenerator, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{sales: sales, cfg: cfg, generator: generator, now: time.Now, loc: loc}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *UseCase) Download(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.sales.GetSale(saleID)
	if err != nil {
		return nil, "", err
	}
	r := Build(sale, uc.cfg.Get(), uc.now().In(uc.loc), uc.loc)
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}
	return pdf, "recibo-venda-" + sale.ID + ".pdf", nil
}

// Build arma el modelo del comprobante a partir de la venta y la configuración.
func Build(sale *entity.Sale, cfg entity.StoreConfig, generatedAt time.Time, loc *time.Location) Receipt {
	cur := cfg.Currency
	lines := make([]Line, 0, len(sale.Items))
	for _, it := range sale.Items {
		lines = append(lines, Line{
			Name:     it.ProductName,
			Detail:   fmt.Sprintf("%s x %d", money.Format(it.UnitPrice, cur), it.Quantity),
			Category: it.Category,
			Subtotal: money.Format(it.Subtotal(), cur),
		})
	}
	return Receipt{
		StoreName:    cfg.Name,
		StoreLogo:    cfg.Logo,
		SaleID:       sale.ID,
		DateTime:     sale.Date.In(loc).Format(dateTimeLayout),
		PaymentLabel: PaymentLabel(sale.PaymentMethod, sale.CardType),
		Lines:        lines,
		Total:        money.Format(sale.Total, cur),
		GeneratedAt:  generatedAt.Format(dateTimeLayout),
	}
}

const dateTimeLayout = "02/01/2006 15:04"

// PaymentLabel etiqueta en portugués del método de pago.
func PaymentLabel(method, cardType string) string {
	switch method {
	case entity.PaymentCash:
		return "Dinheiro"
	case entity.PaymentPix:
		return "PIX"
	case entity.PaymentCard:
		switch cardType {
		case entity.CardDebit:
			return "Cartão (Débito)"
		case entity.CardCredit:
			return "Cartão (Crédito)"
		}
		return "Cartão"
	}
	return method
}
