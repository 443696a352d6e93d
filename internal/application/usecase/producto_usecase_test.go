package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/access"
)

func crearProducto(t *testing.T, uc *usecase.ProductoUseCase, codigo, precio string) *dto.ProductoResponse {
	t.Helper()
	resp, err := uc.Create(vendedorActor, dto.CreateProductoRequest{
		Codigo: codigo,
		Nombre: "Producto " + codigo,
		Precio: decimal.RequireFromString(precio),
		Stock:  10,
	})
	require.NoError(t, err)
	return resp
}

func TestProductoCreate_OK(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())

	resp := crearProducto(t, uc, "LP001", "999.99")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "999.99", resp.Precio.StringFixed(2))
	assert.True(t, resp.Activo)
}

func TestProductoCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())

	_, err := uc.Create(vendedorActor, dto.CreateProductoRequest{
		Codigo: "X", Nombre: "x", Precio: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoCreate_StockNegativo(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())

	_, err := uc.Create(vendedorActor, dto.CreateProductoRequest{
		Codigo: "X", Nombre: "x", Precio: decimal.NewFromInt(1), Stock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())
	crearProducto(t, uc, "LP001", "999.99")

	_, err := uc.Create(vendedorActor, dto.CreateProductoRequest{
		Codigo: "LP001", Nombre: "Otro", Precio: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestProductoUpdate_CodigoDeOtroFalla(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())
	crearProducto(t, uc, "LP001", "999.99")
	p2 := crearProducto(t, uc, "LP002", "499.99")

	codigo := "LP001"
	_, err := uc.Update(vendedorActor, p2.ID, dto.UpdateProductoRequest{Codigo: &codigo})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestProductoUpdate_PrecioNegativoFalla(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())
	p := crearProducto(t, uc, "LP001", "999.99")

	negativo := decimal.RequireFromString("-0.01")
	_, err := uc.Update(vendedorActor, p.ID, dto.UpdateProductoRequest{Precio: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoUpdate_Parcial(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())
	p := crearProducto(t, uc, "LP001", "999.99")

	stock := 99
	resp, err := uc.Update(vendedorActor, p.ID, dto.UpdateProductoRequest{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, 99, resp.Stock)
	assert.Equal(t, "999.99", resp.Precio.StringFixed(2), "los campos omitidos no cambian")
	assert.Equal(t, "LP001", resp.Codigo)
}

func TestProductoDeactivate_SaleDelListado(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())
	p := crearProducto(t, uc, "LP001", "999.99")
	crearProducto(t, uc, "LP002", "499.99")

	require.NoError(t, uc.Deactivate(vendedorActor, p.ID))

	list, err := uc.List(vendedorActor, "", 10, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "LP002", list.Items[0].Codigo)
}

func TestProductoDeactivate_NoExiste(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())
	assert.ErrorIs(t, uc.Deactivate(vendedorActor, "no-existe"), domain.ErrNotFound)
}

// Las operaciones de catálogo verifican el rol al entrar, no solo en el middleware.
func TestProducto_ActorSinRolVentasNegado(t *testing.T) {
	uc := usecase.NewProductoUseCase(newMemProductoRepo())
	intruso := access.Actor{UserID: "x-1", Rol: "auditor"}

	_, err := uc.Create(intruso, dto.CreateProductoRequest{
		Codigo: "LP001", Nombre: "Laptop", Precio: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.List(intruso, "", 10, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, uc.Deactivate(intruso, "p1"), domain.ErrForbidden)
}
