package usecase

import (
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/access"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo administradores).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// List lista usuarios con búsqueda por username, nombre o email.
func (uc *UserUseCase) List(actor access.Actor, search string, limit, offset int) (*dto.UserListResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ToggleActivo invierte el flag activo de un usuario. Los usuarios nunca se
// eliminan. Un actor no puede desactivarse a sí mismo, sin importar su rol.
func (uc *UserUseCase) ToggleActivo(actor access.Actor, id string) (*dto.UserResponse, error) {
	if err := access.Authorize(actor, entity.RolAdministrador); err != nil {
		return nil, err
	}
	if err := access.CanDeactivate(actor, id); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Activo = !user.Activo
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		Activo:        u.Activo,
		FechaCreacion: u.FechaCreacion,
		UltimoLogin:   u.UltimoLogin,
	}
}
