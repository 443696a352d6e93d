package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePedidoRequest entrada para crear un pedido.
type CreatePedidoRequest struct {
	DistribuidoraID string `json:"distribuidora_id" validate:"required,uuid"`
	Observaciones   string `json:"observaciones"`
}

// AgregarItemRequest entrada para agregar un item a un pedido.
// PrecioUnitario lo fija el llamador al momento de la toma del pedido;
// no se vuelve a derivar del precio vigente del producto.
type AgregarItemRequest struct {
	ProductoID     string          `json:"producto_id" validate:"required,uuid"`
	Cantidad       int             `json:"cantidad" validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

// CambiarEstadoRequest entrada para transicionar el estado de un pedido.
type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente enviado recibido cancelado"`
}

// ItemPedidoResponse salida de una línea de pedido.
type ItemPedidoResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// PedidoResponse salida de un pedido con sus items y totales calculados.
type PedidoResponse struct {
	ID              string               `json:"id"`
	Codigo          string               `json:"codigo"`
	DistribuidoraID string               `json:"distribuidora_id"`
	UsuarioID       string               `json:"usuario_id"`
	Estado          string               `json:"estado"`
	Observaciones   string               `json:"observaciones"`
	FechaCreacion   time.Time            `json:"fecha_creacion"`
	FechaEntrega    *time.Time           `json:"fecha_entrega,omitempty"`
	Items           []ItemPedidoResponse `json:"items"`
	Total           decimal.Decimal      `json:"total"`
	TotalItems      int                  `json:"total_items"`
}

// PedidoListResponse listado paginado de pedidos.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
