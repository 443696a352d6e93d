package repository

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	ListActivos(search string, limit, offset int) ([]*entity.Producto, error)
	CountActivos() (int, error)
}
