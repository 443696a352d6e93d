package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/access"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// CascadeTxRunner ejecuta el borrado en cascada de una distribuidora dentro
// de una transacción: primero items y pedidos, después la distribuidora.
type CascadeTxRunner interface {
	RunCascade(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		distribuidoraRepo repository.DistribuidoraRepository,
	) error) error
}

// DistribuidoraUseCase casos de uso CRUD para distribuidoras. Cada operación
// verifica el rol del actor al entrar; el borrado en cascada es solo para
// administradores.
type DistribuidoraUseCase struct {
	repo     repository.DistribuidoraRepository
	txRunner CascadeTxRunner
}

// NewDistribuidoraUseCase construye el caso de uso.
func NewDistribuidoraUseCase(repo repository.DistribuidoraRepository, txRunner CascadeTxRunner) *DistribuidoraUseCase {
	return &DistribuidoraUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una distribuidora. El código debe ser único entre todas las
// distribuidoras, activas o inactivas; si ya existe devuelve ErrDuplicateCode.
func (uc *DistribuidoraUseCase) Create(actor access.Actor, in dto.CreateDistribuidoraRequest) (*dto.DistribuidoraResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}
	d := &entity.Distribuidora{
		ID:            uuid.New().String(),
		Codigo:        in.Codigo,
		Nombre:        in.Nombre,
		Contacto:      in.Contacto,
		Telefono:      in.Telefono,
		Email:         in.Email,
		Direccion:     in.Direccion,
		Activa:        true,
		FechaCreacion: time.Now().UTC(),
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return toDistribuidoraResponse(d), nil
}

// GetByID obtiene una distribuidora por ID.
func (uc *DistribuidoraUseCase) GetByID(actor access.Actor, id string) (*dto.DistribuidoraResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDistribuidoraResponse(d), nil
}

// Update actualiza una distribuidora. Si cambia el código, verifica unicidad
// excluyendo el propio registro (conservar el código actual siempre es válido).
func (uc *DistribuidoraUseCase) Update(actor access.Actor, id string, in dto.UpdateDistribuidoraRequest) (*dto.DistribuidoraResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.Codigo != nil && *in.Codigo != d.Codigo {
		existing, _ := uc.repo.GetByCodigo(*in.Codigo)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicateCode
		}
		d.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		d.Nombre = *in.Nombre
	}
	if in.Contacto != nil {
		d.Contacto = *in.Contacto
	}
	if in.Telefono != nil {
		d.Telefono = *in.Telefono
	}
	if in.Email != nil {
		d.Email = *in.Email
	}
	if in.Direccion != nil {
		d.Direccion = *in.Direccion
	}
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	return toDistribuidoraResponse(d), nil
}

// List lista distribuidoras activas con búsqueda y paginación.
// Las inactivas quedan fuera de los listados de selección pero siguen siendo
// destinos válidos de pedidos históricos.
func (uc *DistribuidoraUseCase) List(actor access.Actor, search string, limit, offset int) (*dto.DistribuidoraListResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListActivas(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DistribuidoraResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDistribuidoraResponse(d))
	}
	return &dto.DistribuidoraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate marca la distribuidora como inactiva (borrado suave).
func (uc *DistribuidoraUseCase) Deactivate(actor access.Actor, id string) error {
	if err := access.Authorize(actor, entity.RolAdministrador, entity.RolVendedor); err != nil {
		return err
	}
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	d.Activa = false
	return uc.repo.Update(d)
}

// Delete elimina la distribuidora y todos sus pedidos con sus items, en una
// sola transacción. La distribuidora es dueña de sus pedidos (composición).
// Solo administradores.
func (uc *DistribuidoraUseCase) Delete(ctx context.Context, actor access.Actor, id string) error {
	if err := access.Authorize(actor, entity.RolAdministrador); err != nil {
		return err
	}
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCascade(ctx, func(
		pedidoRepo repository.PedidoRepository,
		distribuidoraRepo repository.DistribuidoraRepository,
	) error {
		if err := pedidoRepo.DeleteByDistribuidora(id); err != nil {
			return err
		}
		return distribuidoraRepo.Delete(id)
	})
}

func toDistribuidoraResponse(d *entity.Distribuidora) *dto.DistribuidoraResponse {
	if d == nil {
		return nil
	}
	return &dto.DistribuidoraResponse{
		ID:            d.ID,
		Codigo:        d.Codigo,
		Nombre:        d.Nombre,
		Contacto:      d.Contacto,
		Telefono:      d.Telefono,
		Email:         d.Email,
		Direccion:     d.Direccion,
		Activa:        d.Activa,
		FechaCreacion: d.FechaCreacion,
	}
}
