package usecase_test

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Implementan los puertos de
// persistencia sobre mapas; el runner de cascada ejecuta el fn directo.

type memDistribuidoraRepo struct {
	porID map[string]*entity.Distribuidora
}

func newMemDistribuidoraRepo() *memDistribuidoraRepo {
	return &memDistribuidoraRepo{porID: make(map[string]*entity.Distribuidora)}
}

func (r *memDistribuidoraRepo) Create(d *entity.Distribuidora) error {
	r.porID[d.ID] = d
	return nil
}

func (r *memDistribuidoraRepo) GetByID(id string) (*entity.Distribuidora, error) {
	return r.porID[id], nil
}

func (r *memDistribuidoraRepo) GetByCodigo(codigo string) (*entity.Distribuidora, error) {
	for _, d := range r.porID {
		if d.Codigo == codigo {
			return d, nil
		}
	}
	return nil, nil
}

func (r *memDistribuidoraRepo) Update(d *entity.Distribuidora) error {
	r.porID[d.ID] = d
	return nil
}

func (r *memDistribuidoraRepo) ListActivas(search string, limit, offset int) ([]*entity.Distribuidora, error) {
	var out []*entity.Distribuidora
	for _, d := range r.porID {
		if d.Activa {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memDistribuidoraRepo) CountActivas() (int, error) {
	list, _ := r.ListActivas("", 0, 0)
	return len(list), nil
}

func (r *memDistribuidoraRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

type memProductoRepo struct {
	porID map[string]*entity.Producto
}

func newMemProductoRepo() *memProductoRepo {
	return &memProductoRepo{porID: make(map[string]*entity.Producto)}
}

func (r *memProductoRepo) Create(p *entity.Producto) error {
	r.porID[p.ID] = p
	return nil
}

func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.porID[id], nil
}

func (r *memProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.porID {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductoRepo) Update(p *entity.Producto) error {
	r.porID[p.ID] = p
	return nil
}

func (r *memProductoRepo) ListActivos(search string, limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.porID {
		if p.Activo {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductoRepo) CountActivos() (int, error) {
	list, _ := r.ListActivos("", 0, 0)
	return len(list), nil
}

type memUserRepo struct {
	porID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{porID: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.porID[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.porID[id], nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.porID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.porID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.porID[u.ID] = u
	return nil
}

func (r *memUserRepo) List(search string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.porID {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) CountByRol(rol string) (int, error) {
	n := 0
	for _, u := range r.porID {
		if u.Rol == rol {
			n++
		}
	}
	return n, nil
}

// memPedidoRepo implementa solo lo que los casos de uso de este paquete tocan;
// el resto del puerto devuelve valores vacíos.
type memPedidoRepo struct {
	porID    map[string]*entity.Pedido
	itemsPor map[string]*entity.ItemPedido
}

func newMemPedidoRepo() *memPedidoRepo {
	return &memPedidoRepo{
		porID:    make(map[string]*entity.Pedido),
		itemsPor: make(map[string]*entity.ItemPedido),
	}
}

func (r *memPedidoRepo) Create(p *entity.Pedido) error {
	r.porID[p.ID] = p
	return nil
}

func (r *memPedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return r.porID[id], nil
}

func (r *memPedidoRepo) GetByCodigo(codigo string) (*entity.Pedido, error) {
	for _, p := range r.porID {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPedidoRepo) Update(p *entity.Pedido) error {
	r.porID[p.ID] = p
	return nil
}

func (r *memPedidoRepo) List(filter repository.PedidoFilter, limit, offset int) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range r.porID {
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

func (r *memPedidoRepo) ListRecientes(limit int) ([]*entity.Pedido, error) {
	return r.List(repository.PedidoFilter{}, limit, 0)
}

func (r *memPedidoRepo) Count(filter repository.PedidoFilter) (int, error) {
	list, _ := r.List(filter, 0, 0)
	return len(list), nil
}

func (r *memPedidoRepo) CreateItem(item *entity.ItemPedido) error {
	r.itemsPor[item.ID] = item
	return nil
}

func (r *memPedidoRepo) GetItemByID(itemID string) (*entity.ItemPedido, error) {
	return r.itemsPor[itemID], nil
}

func (r *memPedidoRepo) GetItemsByPedidoID(pedidoID string) ([]*entity.ItemPedido, error) {
	var out []*entity.ItemPedido
	for _, item := range r.itemsPor {
		if item.PedidoID == pedidoID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memPedidoRepo) DeleteItem(itemID string) error {
	delete(r.itemsPor, itemID)
	return nil
}

func (r *memPedidoRepo) DeleteByDistribuidora(distribuidoraID string) error {
	for id, p := range r.porID {
		if p.DistribuidoraID != distribuidoraID {
			continue
		}
		for itemID, item := range r.itemsPor {
			if item.PedidoID == p.ID {
				delete(r.itemsPor, itemID)
			}
		}
		delete(r.porID, id)
	}
	return nil
}

// memCascadeRunner ejecuta el fn de cascada sin transacción real.
type memCascadeRunner struct {
	pedidos *memPedidoRepo
	dists   *memDistribuidoraRepo
}

func (t *memCascadeRunner) RunCascade(ctx context.Context, fn func(repository.PedidoRepository, repository.DistribuidoraRepository) error) error {
	return fn(t.pedidos, t.dists)
}
