package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo.
// Precio es el precio de lista vigente; los items de pedido congelan su propio
// precio_unitario al momento de agregarse, así que cambiar o desactivar un
// producto no altera pedidos existentes.
type Producto struct {
	ID            string
	Codigo        string // único entre todos los productos, activos o no
	Nombre        string
	Precio        decimal.Decimal // NUMERIC(10,2)
	Stock         int             // no negativo
	Descripcion   string
	Activo        bool
	FechaCreacion time.Time
}
