package pedido_test

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/pedido"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/access"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePedidoRepo struct {
	pedidos map[string]*entity.Pedido
	items   map[string]*entity.ItemPedido
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{
		pedidos: make(map[string]*entity.Pedido),
		items:   make(map[string]*entity.ItemPedido),
	}
}

func (r *fakePedidoRepo) Create(p *entity.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return r.pedidos[id], nil
}

func (r *fakePedidoRepo) GetByCodigo(codigo string) (*entity.Pedido, error) {
	for _, p := range r.pedidos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePedidoRepo) Update(p *entity.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *fakePedidoRepo) List(filter repository.PedidoFilter, limit, offset int) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range r.pedidos {
		if filter.UsuarioID != "" && p.UsuarioID != filter.UsuarioID {
			continue
		}
		if filter.Estado != "" && p.Estado != filter.Estado {
			continue
		}
		if filter.DistribuidoraID != "" && p.DistribuidoraID != filter.DistribuidoraID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePedidoRepo) ListRecientes(limit int) ([]*entity.Pedido, error) {
	return r.List(repository.PedidoFilter{}, limit, 0)
}

func (r *fakePedidoRepo) Count(filter repository.PedidoFilter) (int, error) {
	list, _ := r.List(filter, 0, 0)
	return len(list), nil
}

func (r *fakePedidoRepo) CreateItem(item *entity.ItemPedido) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakePedidoRepo) GetItemByID(itemID string) (*entity.ItemPedido, error) {
	return r.items[itemID], nil
}

func (r *fakePedidoRepo) GetItemsByPedidoID(pedidoID string) ([]*entity.ItemPedido, error) {
	var out []*entity.ItemPedido
	for _, item := range r.items {
		if item.PedidoID == pedidoID {
			out = append(out, item)
		}
	}
	// Mismo contrato que el repositorio real: orden de inserción.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].FechaCreacion.Equal(out[j].FechaCreacion) {
			return out[i].FechaCreacion.Before(out[j].FechaCreacion)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakePedidoRepo) DeleteItem(itemID string) error {
	delete(r.items, itemID)
	return nil
}

func (r *fakePedidoRepo) DeleteByDistribuidora(distribuidoraID string) error {
	for id, p := range r.pedidos {
		if p.DistribuidoraID != distribuidoraID {
			continue
		}
		for itemID, item := range r.items {
			if item.PedidoID == p.ID {
				delete(r.items, itemID)
			}
		}
		delete(r.pedidos, id)
	}
	return nil
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}

func (r *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) ListActivos(search string, limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if p.Activo {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) CountActivos() (int, error) {
	list, _ := r.ListActivos("", 0, 0)
	return len(list), nil
}

type fakeDistribuidoraRepo struct {
	distribuidoras map[string]*entity.Distribuidora
}

func newFakeDistribuidoraRepo() *fakeDistribuidoraRepo {
	return &fakeDistribuidoraRepo{distribuidoras: make(map[string]*entity.Distribuidora)}
}

func (r *fakeDistribuidoraRepo) Create(d *entity.Distribuidora) error {
	r.distribuidoras[d.ID] = d
	return nil
}

func (r *fakeDistribuidoraRepo) GetByID(id string) (*entity.Distribuidora, error) {
	return r.distribuidoras[id], nil
}

func (r *fakeDistribuidoraRepo) GetByCodigo(codigo string) (*entity.Distribuidora, error) {
	for _, d := range r.distribuidoras {
		if d.Codigo == codigo {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDistribuidoraRepo) Update(d *entity.Distribuidora) error {
	r.distribuidoras[d.ID] = d
	return nil
}

func (r *fakeDistribuidoraRepo) ListActivas(search string, limit, offset int) ([]*entity.Distribuidora, error) {
	var out []*entity.Distribuidora
	for _, d := range r.distribuidoras {
		if d.Activa {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDistribuidoraRepo) CountActivas() (int, error) {
	list, _ := r.ListActivas("", 0, 0)
	return len(list), nil
}

func (r *fakeDistribuidoraRepo) Delete(id string) error {
	delete(r.distribuidoras, id)
	return nil
}

// fakeTxRunner ejecuta el fn directamente sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	pedidos   *fakePedidoRepo
	productos *fakeProductoRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.PedidoRepository, repository.ProductoRepository) error) error {
	return fn(t.pedidos, t.productos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *pedido.PedidoUseCase
	pedidos   *fakePedidoRepo
	productos *fakeProductoRepo
	dists     *fakeDistribuidoraRepo
}

var (
	actorAdmin    = access.Actor{UserID: "admin-1", Rol: entity.RolAdministrador}
	actorVendedor = access.Actor{UserID: "vend-1", Rol: entity.RolVendedor}
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	pedidos := newFakePedidoRepo()
	productos := newFakeProductoRepo()
	dists := newFakeDistribuidoraRepo()
	tx := &fakeTxRunner{pedidos: pedidos, productos: productos}
	return &fixture{
		uc:        pedido.NewPedidoUseCase(tx, pedidos, dists),
		pedidos:   pedidos,
		productos: productos,
		dists:     dists,
	}
}

func (f *fixture) conDistribuidora(activa bool) *entity.Distribuidora {
	d := &entity.Distribuidora{ID: "dist-1", Codigo: "D001", Nombre: "Distribuidora Norte", Activa: activa}
	_ = f.dists.Create(d)
	return d
}

func (f *fixture) conProducto() *entity.Producto {
	p := &entity.Producto{
		ID:     "prod-1",
		Codigo: "LP001",
		Nombre: "Laptop Pro",
		Precio: decimal.RequireFromString("999.99"),
		Stock:  10,
		Activo: true,
	}
	_ = f.productos.Create(p)
	return p
}

func (f *fixture) conPedido(usuarioID, estado string) *entity.Pedido {
	p := &entity.Pedido{
		ID:              "ped-1",
		Codigo:          "PED-20240310120000-ABCD1234",
		DistribuidoraID: "dist-1",
		UsuarioID:       usuarioID,
		FechaCreacion:   time.Now().UTC(),
		Estado:          estado,
	}
	_ = f.pedidos.Create(p)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerarCodigo
// ──────────────────────────────────────────────────────────────────────────────

var codigoRe = regexp.MustCompile(`^PED-\d{14}-[A-Z0-9]{8}$`)

func TestGenerarCodigo_Formato(t *testing.T) {
	ahora := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	codigo := pedido.GenerarCodigo(ahora)

	assert.Regexp(t, codigoRe, codigo)
	assert.True(t, strings.HasPrefix(codigo, "PED-20240310150405-"),
		"el timestamp del código debe ser el reloj recibido en UTC")
}

func TestGenerarCodigo_UnicoDentroDelMismoSegundo(t *testing.T) {
	ahora := time.Now()
	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		codigo := pedido.GenerarCodigo(ahora)
		assert.False(t, vistos[codigo], "código repetido: %s", codigo)
		vistos[codigo] = true
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_PedidoNaceEnPendiente(t *testing.T) {
	f := newFixture(t)
	f.conDistribuidora(true)

	resp, err := f.uc.Crear(actorVendedor, dto.CreatePedidoRequest{
		DistribuidoraID: "dist-1",
		Observaciones:   "entrega en bodega",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoPendiente, resp.Estado)
	assert.Equal(t, actorVendedor.UserID, resp.UsuarioID, "el creador queda como dueño del pedido")
	assert.Regexp(t, codigoRe, resp.Codigo)
	assert.Equal(t, "entrega en bodega", resp.Observaciones)
	assert.True(t, resp.Total.IsZero(), "un pedido recién creado no tiene items")
}

func TestCrear_DistribuidoraInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(actorVendedor, dto.CreatePedidoRequest{DistribuidoraID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una distribuidora desactivada conserva sus pedidos históricos pero no acepta nuevos.
func TestCrear_DistribuidoraInactivaRechaza(t *testing.T) {
	f := newFixture(t)
	f.conDistribuidora(false)

	_, err := f.uc.Crear(actorVendedor, dto.CreatePedidoRequest{DistribuidoraID: "dist-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List: propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_VendedorNoVePedidoAjeno(t *testing.T) {
	f := newFixture(t)
	f.conPedido("vend-2", entity.EstadoPendiente)

	_, err := f.uc.GetByID(actorVendedor, "ped-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetByID_AdminVeCualquierPedido(t *testing.T) {
	f := newFixture(t)
	f.conPedido("vend-2", entity.EstadoPendiente)

	resp, err := f.uc.GetByID(actorAdmin, "ped-1")
	require.NoError(t, err)
	assert.Equal(t, "ped-1", resp.ID)
}

func TestGetByID_NoExiste(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.GetByID(actorAdmin, "ped-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_VendedorSoloVeSusPedidos(t *testing.T) {
	f := newFixture(t)
	_ = f.pedidos.Create(&entity.Pedido{ID: "p1", UsuarioID: actorVendedor.UserID, Estado: entity.EstadoPendiente})
	_ = f.pedidos.Create(&entity.Pedido{ID: "p2", UsuarioID: "vend-2", Estado: entity.EstadoPendiente})

	resp, err := f.uc.List(actorVendedor, repository.PedidoFilter{}, 10, 0)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1, "el filtro de propiedad se fuerza para vendedores")
	assert.Equal(t, "p1", resp.Items[0].ID)
}

func TestList_AdminVeTodos(t *testing.T) {
	f := newFixture(t)
	_ = f.pedidos.Create(&entity.Pedido{ID: "p1", UsuarioID: actorVendedor.UserID, Estado: entity.EstadoPendiente})
	_ = f.pedidos.Create(&entity.Pedido{ID: "p2", UsuarioID: "vend-2", Estado: entity.EstadoEnviado})

	resp, err := f.uc.List(actorAdmin, repository.PedidoFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

func TestList_FiltroPorEstado(t *testing.T) {
	f := newFixture(t)
	_ = f.pedidos.Create(&entity.Pedido{ID: "p1", UsuarioID: "u", Estado: entity.EstadoPendiente})
	_ = f.pedidos.Create(&entity.Pedido{ID: "p2", UsuarioID: "u", Estado: entity.EstadoEnviado})

	resp, err := f.uc.List(actorAdmin, repository.PedidoFilter{Estado: entity.EstadoEnviado}, 10, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p2", resp.Items[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// AgregarItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregarItem_CantidadInvalida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, cantidad := range []int{0, -1} {
		_, err := f.uc.AgregarItem(ctx, actorVendedor, "ped-1", dto.AgregarItemRequest{
			ProductoID:     "prod-1",
			Cantidad:       cantidad,
			PrecioUnitario: decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d debe rechazarse", cantidad)
	}
}

func TestAgregarItem_PrecioNegativo(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AgregarItem(context.Background(), actorVendedor, "ped-1", dto.AgregarItemRequest{
		ProductoID:     "prod-1",
		Cantidad:       1,
		PrecioUnitario: decimal.RequireFromString("-0.01"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAgregarItem_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)

	_, err := f.uc.AgregarItem(context.Background(), actorVendedor, "ped-1", dto.AgregarItemRequest{
		ProductoID:     "no-existe",
		Cantidad:       1,
		PrecioUnitario: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAgregarItem_CongelaPrecioYCalculaSubtotal(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)
	f.conProducto()

	item, err := f.uc.AgregarItem(context.Background(), actorVendedor, "ped-1", dto.AgregarItemRequest{
		ProductoID:     "prod-1",
		Cantidad:       2,
		PrecioUnitario: decimal.RequireFromString("999.99"),
	})
	require.NoError(t, err)

	assert.Equal(t, "999.99", item.PrecioUnitario.StringFixed(2))
	assert.Equal(t, "1999.98", item.Subtotal.StringFixed(2))

	// El total del pedido refleja el item recién agregado.
	resp, err := f.uc.GetByID(actorVendedor, "ped-1")
	require.NoError(t, err)
	assert.Equal(t, "1999.98", resp.Total.StringFixed(2))
	assert.Equal(t, 2, resp.TotalItems)
}

func TestAgregarItem_VendedorNoTocaPedidoAjeno(t *testing.T) {
	f := newFixture(t)
	f.conPedido("vend-2", entity.EstadoPendiente)
	f.conProducto()

	_, err := f.uc.AgregarItem(context.Background(), actorVendedor, "ped-1", dto.AgregarItemRequest{
		ProductoID:     "prod-1",
		Cantidad:       1,
		PrecioUnitario: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAgregarItem_PedidoTerminalRechazado(t *testing.T) {
	for _, estado := range []string{entity.EstadoRecibido, entity.EstadoCancelado} {
		t.Run(estado, func(t *testing.T) {
			f := newFixture(t)
			f.conPedido(actorVendedor.UserID, estado)
			f.conProducto()

			_, err := f.uc.AgregarItem(context.Background(), actorVendedor, "ped-1", dto.AgregarItemRequest{
				ProductoID:     "prod-1",
				Cantidad:       3,
				PrecioUnitario: decimal.RequireFromString("10.00"),
			})
			assert.ErrorIs(t, err, domain.ErrPedidoCerrado)

			// El pedido cerrado queda intacto.
			resp, err := f.uc.GetByID(actorVendedor, "ped-1")
			require.NoError(t, err)
			assert.Equal(t, "0.00", resp.Total.StringFixed(2))
			assert.Zero(t, resp.TotalItems)
		})
	}
}

func TestAgregarItem_PedidoEnviadoSigueAbierto(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoEnviado)
	f.conProducto()

	_, err := f.uc.AgregarItem(context.Background(), actorVendedor, "ped-1", dto.AgregarItemRequest{
		ProductoID:     "prod-1",
		Cantidad:       1,
		PrecioUnitario: decimal.NewFromInt(10),
	})
	assert.NoError(t, err, "enviado no es terminal: los items siguen siendo editables")
}

func TestAgregarItem_ItemsEnOrdenDeInsercion(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)
	f.conProducto()

	var ids []string
	for i := 0; i < 5; i++ {
		item, err := f.uc.AgregarItem(context.Background(), actorVendedor, "ped-1", dto.AgregarItemRequest{
			ProductoID:     "prod-1",
			Cantidad:       1,
			PrecioUnitario: decimal.NewFromInt(int64(i + 1)),
		})
		require.NoError(t, err)
		ids = append(ids, item.ID)
		time.Sleep(time.Millisecond)
	}

	resp, err := f.uc.GetByID(actorVendedor, "ped-1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 5)
	for i, item := range resp.Items {
		assert.Equal(t, ids[i], item.ID, "posición %d", i)
	}
}

// Desactivar o reetiquetar el producto no reescribe los items ya registrados.
func TestAgregarItem_PrecioInmuneACambiosDelProducto(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)
	p := f.conProducto()

	item, err := f.uc.AgregarItem(context.Background(), actorVendedor, "ped-1", dto.AgregarItemRequest{
		ProductoID:     "prod-1",
		Cantidad:       2,
		PrecioUnitario: decimal.RequireFromString("999.99"),
	})
	require.NoError(t, err)

	p.Activo = false
	p.Precio = decimal.RequireFromString("1.00")
	require.NoError(t, f.productos.Update(p))

	resp, err := f.uc.GetByID(actorVendedor, "ped-1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, item.ID, resp.Items[0].ID)
	assert.Equal(t, "999.99", resp.Items[0].PrecioUnitario.StringFixed(2))
	assert.Equal(t, "1999.98", resp.Items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "1999.98", resp.Total.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// EliminarItem
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarItem_ItemDeOtroPedido(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)
	_ = f.pedidos.CreateItem(&entity.ItemPedido{ID: "item-1", PedidoID: "otro-pedido", ProductoID: "prod-1", Cantidad: 1})

	err := f.uc.EliminarItem(context.Background(), actorVendedor, "ped-1", "item-1")
	assert.ErrorIs(t, err, domain.ErrItemMismatch,
		"un item de otro pedido no debe poder eliminarse vía este pedido")
}

func TestEliminarItem_ItemInexistente(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)

	err := f.uc.EliminarItem(context.Background(), actorVendedor, "ped-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarItem_OK(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)
	_ = f.pedidos.CreateItem(&entity.ItemPedido{ID: "item-1", PedidoID: "ped-1", ProductoID: "prod-1", Cantidad: 1})

	require.NoError(t, f.uc.EliminarItem(context.Background(), actorVendedor, "ped-1", "item-1"))

	items, _ := f.pedidos.GetItemsByPedidoID("ped-1")
	assert.Empty(t, items)
}

func TestEliminarItem_PedidoTerminalRechazado(t *testing.T) {
	for _, estado := range []string{entity.EstadoRecibido, entity.EstadoCancelado} {
		t.Run(estado, func(t *testing.T) {
			f := newFixture(t)
			f.conPedido(actorVendedor.UserID, estado)
			_ = f.pedidos.CreateItem(&entity.ItemPedido{
				ID: "item-1", PedidoID: "ped-1", ProductoID: "prod-1",
				Cantidad: 1, PrecioUnitario: decimal.NewFromInt(10),
			})

			err := f.uc.EliminarItem(context.Background(), actorVendedor, "ped-1", "item-1")
			assert.ErrorIs(t, err, domain.ErrPedidoCerrado)

			items, _ := f.pedidos.GetItemsByPedidoID("ped-1")
			assert.Len(t, items, 1, "el item del pedido cerrado no debe borrarse")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CambiarEstado
// ──────────────────────────────────────────────────────────────────────────────

func TestCambiarEstado_PendienteAEnviado(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)

	resp, err := f.uc.CambiarEstado(context.Background(), actorVendedor, "ped-1", entity.EstadoEnviado)
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoEnviado, resp.Estado)
	assert.Nil(t, resp.FechaEntrega)
}

func TestCambiarEstado_TransicionIlegal(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoEnviado)

	_, err := f.uc.CambiarEstado(context.Background(), actorVendedor, "ped-1", entity.EstadoPendiente)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	p, _ := f.pedidos.GetByID("ped-1")
	assert.Equal(t, entity.EstadoEnviado, p.Estado, "una transición rechazada no muta el pedido")
}

func TestCambiarEstado_EstadoDesconocido(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoPendiente)

	_, err := f.uc.CambiarEstado(context.Background(), actorVendedor, "ped-1", "entregado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstado_RecibidoEstampaFechaEntrega(t *testing.T) {
	f := newFixture(t)
	f.conPedido(actorVendedor.UserID, entity.EstadoEnviado)

	resp, err := f.uc.CambiarEstado(context.Background(), actorVendedor, "ped-1", entity.EstadoRecibido)
	require.NoError(t, err)

	require.NotNil(t, resp.FechaEntrega)
	assert.WithinDuration(t, time.Now().UTC(), *resp.FechaEntrega, 5*time.Second)
}

func TestCambiarEstado_VendedorNoTocaPedidoAjeno(t *testing.T) {
	f := newFixture(t)
	f.conPedido("vend-2", entity.EstadoPendiente)

	_, err := f.uc.CambiarEstado(context.Background(), actorVendedor, "ped-1", entity.EstadoEnviado)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
