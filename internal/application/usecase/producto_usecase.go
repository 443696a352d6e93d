package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/access"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos del catálogo. Cada
// operación verifica el rol del actor al entrar.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto. El código debe ser único entre todos los productos,
// activos o no; precio negativo o stock negativo se rechazan.
func (uc *ProductoUseCase) Create(actor access.Actor, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	if in.Precio.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}
	p := &entity.Producto{
		ID:            uuid.New().String(),
		Codigo:        in.Codigo,
		Nombre:        in.Nombre,
		Precio:        in.Precio,
		Stock:         in.Stock,
		Descripcion:   in.Descripcion,
		Activo:        true,
		FechaCreacion: time.Now().UTC(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(actor access.Actor, id string) (*dto.ProductoResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// Update actualiza un producto. Si cambia el código verifica unicidad excluyendo
// el propio registro. Cambiar el precio no afecta items de pedido ya creados:
// cada item congeló su precio_unitario al agregarse.
func (uc *ProductoUseCase) Update(actor access.Actor, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Codigo != nil && *in.Codigo != p.Codigo {
		existing, _ := uc.repo.GetByCodigo(*in.Codigo)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicateCode
		}
		p.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Precio = *in.Precio
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Stock = *in.Stock
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// List lista productos activos con búsqueda y paginación.
func (uc *ProductoUseCase) List(actor access.Actor, search string, limit, offset int) (*dto.ProductoListResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListActivos(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate marca el producto como inactivo (borrado suave). Los items de
// pedidos existentes que lo referencian no se tocan.
func (uc *ProductoUseCase) Deactivate(actor access.Actor, id string) error {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return err
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	p.Activo = false
	return uc.repo.Update(p)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nombre:        p.Nombre,
		Precio:        p.Precio,
		Stock:         p.Stock,
		Descripcion:   p.Descripcion,
		Activo:        p.Activo,
		FechaCreacion: p.FechaCreacion,
	}
}
