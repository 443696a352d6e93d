package repository

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// DistribuidoraRepository define el puerto de persistencia para Distribuidora.
type DistribuidoraRepository interface {
	Create(d *entity.Distribuidora) error
	GetByID(id string) (*entity.Distribuidora, error)
	// GetByCodigo busca por código entre todas las distribuidoras, activas o no
	// (el código es único a nivel global, no solo entre activas).
	GetByCodigo(codigo string) (*entity.Distribuidora, error)
	Update(d *entity.Distribuidora) error
	// ListActivas lista solo distribuidoras activas, con búsqueda opcional por
	// nombre o código, orden estable por fecha de creación.
	ListActivas(search string, limit, offset int) ([]*entity.Distribuidora, error)
	CountActivas() (int, error)
	Delete(id string) error
}
