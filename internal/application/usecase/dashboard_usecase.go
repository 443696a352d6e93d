package usecase

import (
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain/access"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// DashboardUseCase arma los contadores de la pantalla principal.
type DashboardUseCase struct {
	distribuidoraRepo repository.DistribuidoraRepository
	productoRepo      repository.ProductoRepository
	pedidoRepo        repository.PedidoRepository
	userRepo          repository.UserRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	distribuidoraRepo repository.DistribuidoraRepository,
	productoRepo repository.ProductoRepository,
	pedidoRepo repository.PedidoRepository,
	userRepo repository.UserRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		distribuidoraRepo: distribuidoraRepo,
		productoRepo:      productoRepo,
		pedidoRepo:        pedidoRepo,
		userRepo:          userRepo,
	}
}

// Get devuelve los contadores: distribuidoras y productos activos, pedidos por
// estado y los 5 pedidos más recientes. Para administradores agrega el
// desglose de usuarios por rol.
func (uc *DashboardUseCase) Get(actor access.Actor) (*dto.DashboardResponse, error) {
	totalDistribuidoras, err := uc.distribuidoraRepo.CountActivas()
	if err != nil {
		return nil, err
	}
	totalProductos, err := uc.productoRepo.CountActivos()
	if err != nil {
		return nil, err
	}
	totalPedidos, err := uc.pedidoRepo.Count(repository.PedidoFilter{})
	if err != nil {
		return nil, err
	}

	porEstado := make(map[string]int, 4)
	for _, estado := range []string{entity.EstadoPendiente, entity.EstadoEnviado, entity.EstadoRecibido, entity.EstadoCancelado} {
		n, err := uc.pedidoRepo.Count(repository.PedidoFilter{Estado: estado})
		if err != nil {
			return nil, err
		}
		porEstado[estado] = n
	}

	recientes, err := uc.pedidoRepo.ListRecientes(5)
	if err != nil {
		return nil, err
	}
	pedidos := make([]dto.PedidoResponse, 0, len(recientes))
	for _, p := range recientes {
		p.Items, err = uc.pedidoRepo.GetItemsByPedidoID(p.ID)
		if err != nil {
			return nil, err
		}
		pedidos = append(pedidos, *pedidoToResponse(p))
	}

	out := &dto.DashboardResponse{
		TotalDistribuidoras: totalDistribuidoras,
		TotalProductos:      totalProductos,
		TotalPedidos:        totalPedidos,
		PedidosPorEstado:    porEstado,
		PedidosRecientes:    pedidos,
	}

	if actor.EsAdministrador() {
		porRol := make(map[string]int, 2)
		for _, rol := range []string{entity.RolAdministrador, entity.RolVendedor} {
			n, err := uc.userRepo.CountByRol(rol)
			if err != nil {
				return nil, err
			}
			porRol[rol] = n
		}
		out.UsuariosPorRol = porRol
	}

	return out, nil
}

func pedidoToResponse(p *entity.Pedido) *dto.PedidoResponse {
	items := make([]dto.ItemPedidoResponse, 0, len(p.Items))
	for _, i := range p.Items {
		items = append(items, dto.ItemPedidoResponse{
			ID:             i.ID,
			ProductoID:     i.ProductoID,
			Cantidad:       i.Cantidad,
			PrecioUnitario: i.PrecioUnitario,
			Subtotal:       i.Subtotal(),
		})
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
