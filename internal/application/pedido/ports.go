package pedido

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta una mutación del agregado Pedido dentro de una transacción.
// La lectura de la cabecera, la verificación de permisos y la escritura van en
// el mismo scope para que nunca sea observable una actualización a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
