package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

func newDashboardFixture() *usecase.DashboardUseCase {
	dists := newMemDistribuidoraRepo()
	productos := newMemProductoRepo()
	pedidos := newMemPedidoRepo()
	users := newMemUserRepo()

	_ = dists.Create(&entity.Distribuidora{ID: "d1", Codigo: "D001", Activa: true})
	_ = dists.Create(&entity.Distribuidora{ID: "d2", Codigo: "D002", Activa: false})
	_ = productos.Create(&entity.Producto{ID: "p1", Codigo: "LP001", Activo: true})
	_ = users.Create(&entity.User{ID: "admin-1", Rol: entity.RolAdministrador, Activo: true})
	_ = users.Create(&entity.User{ID: "vend-1", Rol: entity.RolVendedor, Activo: true})
	_ = users.Create(&entity.User{ID: "vend-2", Rol: entity.RolVendedor, Activo: false})

	_ = pedidos.Create(&entity.Pedido{ID: "ped-1", DistribuidoraID: "d1", UsuarioID: "vend-1", Estado: entity.EstadoPendiente})
	_ = pedidos.Create(&entity.Pedido{ID: "ped-2", DistribuidoraID: "d1", UsuarioID: "vend-1", Estado: entity.EstadoEnviado})
	_ = pedidos.Create(&entity.Pedido{ID: "ped-3", DistribuidoraID: "d1", UsuarioID: "vend-2", Estado: entity.EstadoPendiente})

	return usecase.NewDashboardUseCase(dists, productos, pedidos, users)
}

func TestDashboard_Contadores(t *testing.T) {
	uc := newDashboardFixture()

	resp, err := uc.Get(vendedorActor)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalDistribuidoras, "solo cuenta distribuidoras activas")
	assert.Equal(t, 1, resp.TotalProductos)
	assert.Equal(t, 3, resp.TotalPedidos)
	assert.Equal(t, 2, resp.PedidosPorEstado[entity.EstadoPendiente])
	assert.Equal(t, 1, resp.PedidosPorEstado[entity.EstadoEnviado])
	assert.Equal(t, 0, resp.PedidosPorEstado[entity.EstadoRecibido])
	assert.Len(t, resp.PedidosRecientes, 3)
}

// El desglose de usuarios por rol solo aparece para administradores.
func TestDashboard_UsuariosPorRolSoloAdmin(t *testing.T) {
	uc := newDashboardFixture()

	resp, err := uc.Get(vendedorActor)
	require.NoError(t, err)
	assert.Nil(t, resp.UsuariosPorRol)

	resp, err = uc.Get(adminActor)
	require.NoError(t, err)
	require.NotNil(t, resp.UsuariosPorRol)
	assert.Equal(t, 1, resp.UsuariosPorRol[entity.RolAdministrador])
	assert.Equal(t, 2, resp.UsuariosPorRol[entity.RolVendedor], "cuenta activos e inactivos")
}
