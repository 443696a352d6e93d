package pedido

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/access"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// PedidoUseCase orquesta el ciclo de vida de los pedidos: creación, items y
// transiciones de estado. Toda operación recibe un Actor explícito y verifica
// rol y propiedad antes de mutar; un vendedor solo opera sobre sus pedidos.
type PedidoUseCase struct {
	txRunner          TxRunner
	pedidoRepo        repository.PedidoRepository
	distribuidoraRepo repository.DistribuidoraRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(txRunner TxRunner, pedidoRepo repository.PedidoRepository, distribuidoraRepo repository.DistribuidoraRepository) *PedidoUseCase {
	return &PedidoUseCase{
		txRunner:          txRunner,
		pedidoRepo:        pedidoRepo,
		distribuidoraRepo: distribuidoraRepo,
	}
}

// GenerarCodigo genera el identificador legible del pedido:
// PED-<timestamp UTC yyyymmddhhmmss>-<token aleatorio de 8 en mayúsculas>.
// El token hace despreciable la probabilidad de colisión dentro del mismo segundo.
func GenerarCodigo(ahora time.Time) string {
	token := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("PED-%s-%s", ahora.UTC().Format("20060102150405"), token)
}

// Crear crea un pedido en estado pendiente para una distribuidora activa.
// Distribuidora inexistente o inactiva devuelve ErrNotFound: las inactivas no
// aceptan pedidos nuevos aunque conserven los históricos.
func (uc *PedidoUseCase) Crear(actor access.Actor, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	d, err := uc.distribuidoraRepo.GetByID(in.DistribuidoraID)
	if err != nil {
		return nil, err
	}
	if d == nil || !d.Activa {
		return nil, domain.ErrNotFound
	}
	ahora := time.Now().UTC()
	p := &entity.Pedido{
		ID:              uuid.New().String(),
		Codigo:          GenerarCodigo(ahora),
		DistribuidoraID: in.DistribuidoraID,
		UsuarioID:       actor.UserID,
		FechaCreacion:   ahora,
		Estado:          entity.EstadoPendiente,
		Observaciones:   in.Observaciones,
	}
	if err := uc.pedidoRepo.Create(p); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// GetByID obtiene un pedido con sus items. Un vendedor solo puede ver los suyos.
func (uc *PedidoUseCase) GetByID(actor access.Actor, id string) (*dto.PedidoResponse, error) {
	p, err := uc.cargarPedido(uc.pedidoRepo, id)
	if err != nil {
		return nil, err
	}
	if err := access.AuthorizeOwnership(actor, p); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// List lista pedidos con filtros de estado y distribuidora, más recientes
// primero. A un vendedor se le fuerza el filtro de propiedad.
func (uc *PedidoUseCase) List(actor access.Actor, filter repository.PedidoFilter, limit, offset int) (*dto.PedidoListResponse, error) {
	if !actor.EsAdministrador() {
		filter.UsuarioID = actor.UserID
	}
	list, err := uc.pedidoRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		p.Items, err = uc.pedidoRepo.GetItemsByPedidoID(p.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toPedidoResponse(p))
	}
	return &dto.PedidoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AgregarItem agrega una línea al pedido. La cantidad debe ser >= 1 y el
// precio unitario lo fija el llamador: queda congelado en el item aunque el
// precio del producto cambie o el producto se desactive después. Un pedido
// en estado terminal (recibido o cancelado) no admite items nuevos.
func (uc *PedidoUseCase) AgregarItem(ctx context.Context, actor access.Actor, pedidoID string, in dto.AgregarItemRequest) (*dto.ItemPedidoResponse, error) {
	if in.Cantidad < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.PrecioUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ItemPedidoResponse
	err := uc.txRunner.Run(ctx, func(pedidoRepo repository.PedidoRepository, productoRepo repository.ProductoRepository) error {
		p, err := pedidoRepo.GetByID(pedidoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := access.AuthorizeOwnership(actor, p); err != nil {
			return err
		}
		if p.EsTerminal() {
			return domain.ErrPedidoCerrado
		}
		producto, err := productoRepo.GetByID(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		item := &entity.ItemPedido{
			ID:             uuid.New().String(),
			PedidoID:       p.ID,
			ProductoID:     in.ProductoID,
			Cantidad:       in.Cantidad,
			PrecioUnitario: in.PrecioUnitario,
			FechaCreacion:  time.Now().UTC(),
		}
		if err := pedidoRepo.CreateItem(item); err != nil {
			return err
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EliminarItem quita una línea del pedido. Devuelve ErrItemMismatch si el item
// existe pero pertenece a otro pedido. Igual que al agregar, los pedidos en
// estado terminal no se tocan.
func (uc *PedidoUseCase) EliminarItem(ctx context.Context, actor access.Actor, pedidoID, itemID string) error {
	return uc.txRunner.Run(ctx, func(pedidoRepo repository.PedidoRepository, productoRepo repository.ProductoRepository) error {
		p, err := pedidoRepo.GetByID(pedidoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := access.AuthorizeOwnership(actor, p); err != nil {
			return err
		}
		if p.EsTerminal() {
			return domain.ErrPedidoCerrado
		}
		item, err := pedidoRepo.GetItemByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.PedidoID != p.ID {
			return domain.ErrItemMismatch
		}
		return pedidoRepo.DeleteItem(itemID)
	})
}

// CambiarEstado aplica una transición del ciclo de vida. La tabla vive en la
// entidad; una transición ilegal devuelve ErrInvalidTransition. La primera
// entrada en recibido estampa la fecha de entrega en UTC.
func (uc *PedidoUseCase) CambiarEstado(ctx context.Context, actor access.Actor, pedidoID, nuevo string) (*dto.PedidoResponse, error) {
	if !entity.EstadoValido(nuevo) {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.PedidoResponse
	err := uc.txRunner.Run(ctx, func(pedidoRepo repository.PedidoRepository, productoRepo repository.ProductoRepository) error {
		p, err := uc.cargarPedido(pedidoRepo, pedidoID)
		if err != nil {
			return err
		}
		if err := access.AuthorizeOwnership(actor, p); err != nil {
			return err
		}
		if !p.CambiarEstado(nuevo, time.Now().UTC()) {
			return domain.ErrInvalidTransition
		}
		if err := pedidoRepo.Update(p); err != nil {
			return err
		}
		out = toPedidoResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// cargarPedido trae la cabecera y sus items; ErrNotFound si no existe.
func (uc *PedidoUseCase) cargarPedido(repo repository.PedidoRepository, id string) (*entity.Pedido, error) {
	p, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Items, err = repo.GetItemsByPedidoID(id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func toItemResponse(i *entity.ItemPedido) *dto.ItemPedidoResponse {
	return &dto.ItemPedidoResponse{
		ID:             i.ID,
		ProductoID:     i.ProductoID,
		Cantidad:       i.Cantidad,
		PrecioUnitario: i.PrecioUnitario,
		Subtotal:       i.Subtotal(),
	}
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	items := make([]dto.ItemPedidoResponse, 0, len(p.Items))
	for _, i := range p.Items {
		items = append(items, *toItemResponse(i))
	}
	return &dto.PedidoResponse{
		ID:              p.ID,
		Codigo:          p.Codigo,
		DistribuidoraID: p.DistribuidoraID,
		UsuarioID:       p.UsuarioID,
		Estado:          p.Estado,
		Observaciones:   p.Observaciones,
		FechaCreacion:   p.FechaCreacion,
		FechaEntrega:    p.FechaEntrega,
		Items:           items,
		Total:           p.Total(),
		TotalItems:      p.TotalItems(),
	}
}
