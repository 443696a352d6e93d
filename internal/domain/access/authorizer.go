// Package access concentra las decisiones de autorización del dominio.
// Todas las operaciones protegidas reciben un Actor explícito; nunca se
// depende de un "usuario actual" ambiental. Las funciones devuelven un error
// de dominio (nil = permitido) para que el caso de uso corte antes de mutar.
package access

import (
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// Actor identifica al usuario autenticado que ejecuta una operación.
type Actor struct {
	UserID string
	Rol    string
}

// EsAdministrador indica si el actor tiene rol administrador.
func (a Actor) EsAdministrador() bool {
	return a.Rol == entity.RolAdministrador
}

// Authorize permite la operación solo si el rol del actor está en el conjunto dado.
func Authorize(actor Actor, roles ...string) error {
	for _, rol := range roles {
		if actor.Rol == rol {
			return nil
		}
	}
	return domain.ErrForbidden
}

// AuthorizeOwnership permite actuar sobre un pedido solo a su creador.
// Un administrador puede actuar sobre cualquier pedido.
func AuthorizeOwnership(actor Actor, pedido *entity.Pedido) error {
	if actor.EsAdministrador() {
		return nil
	}
	if pedido.EsDe(actor.UserID) {
		return nil
	}
	return domain.ErrForbidden
}

// CanDeactivate rechaza la autodesactivación sin importar el rol.
func CanDeactivate(actor Actor, targetUserID string) error {
	if actor.UserID == targetUserID {
		return domain.ErrSelfDeactivate
	}
	return nil
}
