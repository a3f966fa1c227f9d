package pos_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

func product(id string, price int64, stock int) *entity.Product {
	return &entity.Product{ID: id, Name: "Produto " + id, Price: decimal.NewFromInt(price), Category: "suplementos", Stock: stock}
}

func TestCart_AddLine_FusionaDuplicados(t *testing.T) {
	c := pos.NewCart()
	a := product("a", 10, 5)
	c.AddLine(a)
	c.AddLine(a)
	c.AddLine(product("b", 3, 1))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, c.Count())
}

func TestCart_SetQuantity_CeroEliminaLinea(t *testing.T) {
	c := pos.NewCart()
	c.AddLine(product("a", 10, 5))
	c.SetQuantity("a", 4)
	assert.Equal(t, 4, c.Lines()[0].Quantity)

	c.SetQuantity("a", 0)
	assert.True(t, c.IsEmpty())

	c.AddLine(product("b", 1, 1))
	c.SetQuantity("b", -3)
	assert.True(t, c.IsEmpty())
}

func TestCart_OperacionesSobreIDInexistente_SonNoOp(t *testing.T) {
	c := pos.NewCart()
	c.AddLine(product("a", 10, 5))
	c.SetQuantity("zzz", 7)
	c.RemoveLine("zzz")
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestCart_Clear(t *testing.T) {
	c := pos.NewCart()
	c.AddLine(product("a", 10, 5))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total(entity.PaymentCash, "").IsZero())
}

// Para cualquier secuencia de operaciones el carrito nunca contiene cantidades <= 0.
func TestCart_SecuenciaAleatoria_NuncaCantidadNoPositiva(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d"}
	c := pos.NewCart()
	for i := 0; i < 2000; i++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(3) {
		case 0:
			c.AddLine(product(id, 1, 100))
		case 1:
			c.SetQuantity(id, rng.Intn(7)-3)
		case 2:
			c.RemoveLine(id)
		}
		seen := map[string]bool{}
		for _, l := range c.Lines() {
			require.GreaterOrEqual(t, l.Quantity, 1, "iteración %d", i)
			require.False(t, seen[l.Product.ID], "línea duplicada para %s", l.Product.ID)
			seen[l.Product.ID] = true
		}
	}
}

func TestCart_Lines_DevuelveCopias(t *testing.T) {
	c := pos.NewCart()
	c.AddLine(product("a", 10, 5))
	lines := c.Lines()
	lines[0].Quantity = 99
	lines[0].Product.Name = "mutado"
	assert.Equal(t, 1, c.Lines()[0].Quantity)
	assert.Equal(t, "Produto a", c.Lines()[0].Product.Name)
}

func TestCart_Total_UsaPrecioAPlazoSoloConCredito(t *testing.T) {
	p := product("a", 100, 5)
	installment := decimal.NewFromInt(110)
	p.InstallmentPrice = &installment

	c := pos.NewCart()
	c.AddLine(p)
	c.AddLine(p)

	assert.True(t, c.Total(entity.PaymentCash, "").Equal(decimal.NewFromInt(200)))
	assert.True(t, c.Total(entity.PaymentCard, entity.CardDebit).Equal(decimal.NewFromInt(200)))
	assert.True(t, c.Total(entity.PaymentCard, entity.CardCredit).Equal(decimal.NewFromInt(220)))
}
