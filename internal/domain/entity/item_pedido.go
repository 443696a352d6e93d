package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemPedido representa una línea de un pedido.
// PrecioUnitario se captura al agregar el item y no se vuelve a derivar del
// producto: los precios quedan congelados al momento de la toma del pedido.
// FechaCreacion da el orden de inserción de las líneas dentro del pedido.
type ItemPedido struct {
	ID             string
	PedidoID       string
	ProductoID     string
	Cantidad       int // >= 1
	PrecioUnitario decimal.Decimal
	FechaCreacion  time.Time
}

// Subtotal devuelve cantidad × precio unitario.
func (i *ItemPedido) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}
