package repository

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// PedidoFilter filtros para listar pedidos. Campos vacíos no filtran.
// UsuarioID se usa para restringir a un vendedor a sus propios pedidos.
type PedidoFilter struct {
	UsuarioID       string
	Estado          string
	DistribuidoraID string
}

// PedidoRepository define el puerto de persistencia para Pedido y sus items.
// El item vive dentro del agregado, así que su persistencia va por este mismo puerto.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	GetByCodigo(codigo string) (*entity.Pedido, error)
	// Update actualiza estado, fecha_entrega y observaciones de la cabecera.
	Update(pedido *entity.Pedido) error
	List(filter PedidoFilter, limit, offset int) ([]*entity.Pedido, error)
	ListRecientes(limit int) ([]*entity.Pedido, error)
	Count(filter PedidoFilter) (int, error)

	CreateItem(item *entity.ItemPedido) error
	GetItemByID(itemID string) (*entity.ItemPedido, error)
	GetItemsByPedidoID(pedidoID string) ([]*entity.ItemPedido, error)
	DeleteItem(itemID string) error

	// DeleteByDistribuidora elimina items y pedidos de una distribuidora
	// (cascada explícita; se invoca dentro de la transacción de borrado).
	DeleteByDistribuidora(distribuidoraID string) error
}
