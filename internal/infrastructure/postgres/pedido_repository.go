package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoColumns = `id, codigo, distribuidora_id, usuario_id, fecha_creacion, fecha_entrega, estado, observaciones`

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL
// (usable con pool o tx). Cubre la cabecera y los items del agregado.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste la cabecera de un pedido. El código tiene constraint único.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (` + pedidoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.DistribuidoraID, p.UsuarioID, p.FechaCreacion, p.FechaEntrega, p.Estado, p.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido por ID (los items se cargan aparte).
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return r.getBy(`id = $1`, id)
}

// GetByCodigo obtiene la cabecera por el código legible (PED-...).
func (r *PedidoRepo) GetByCodigo(codigo string) (*entity.Pedido, error) {
	return r.getBy(`codigo = $1`, codigo)
}

func (r *PedidoRepo) getBy(where string, arg any) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE ` + where
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.DistribuidoraID, &p.UsuarioID, &p.FechaCreacion, &p.FechaEntrega, &p.Estado, &p.Observaciones,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// Update actualiza estado, fecha_entrega y observaciones de la cabecera.
// El código y las referencias de creación son inmutables.
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	query := `
		UPDATE pedidos SET estado = $2, fecha_entrega = $3, observaciones = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Estado, p.FechaEntrega, p.Observaciones)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// List lista cabeceras según el filtro, más recientes primero.
func (r *PedidoRepo) List(filter repository.PedidoFilter, limit, offset int) ([]*entity.Pedido, error) {
	where, args := buildPedidoWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+pedidoColumns+` FROM pedidos %s ORDER BY fecha_creacion DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))
	return r.queryPedidos(query, args...)
}

// ListRecientes devuelve los últimos pedidos creados, sin filtro.
func (r *PedidoRepo) ListRecientes(limit int) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos ORDER BY fecha_creacion DESC LIMIT $1`
	return r.queryPedidos(query, limit)
}

// Count cuenta pedidos según el filtro.
func (r *PedidoRepo) Count(filter repository.PedidoFilter) (int, error) {
	where, args := buildPedidoWhere(filter)
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM pedidos `+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pedidos: %w", err)
	}
	return n, nil
}

func buildPedidoWhere(filter repository.PedidoFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.UsuarioID != "" {
		args = append(args, filter.UsuarioID)
		conds = append(conds, fmt.Sprintf("usuario_id = $%d", len(args)))
	}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		conds = append(conds, fmt.Sprintf("estado = $%d", len(args)))
	}
	if filter.DistribuidoraID != "" {
		args = append(args, filter.DistribuidoraID)
		conds = append(conds, fmt.Sprintf("distribuidora_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *PedidoRepo) queryPedidos(query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.Codigo, &p.DistribuidoraID, &p.UsuarioID,
			&p.FechaCreacion, &p.FechaEntrega, &p.Estado, &p.Observaciones); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

const itemColumns = `id, pedido_id, producto_id, cantidad, precio_unitario, fecha_creacion`

// CreateItem persiste una línea de pedido.
func (r *PedidoRepo) CreateItem(item *entity.ItemPedido) error {
	query := `
		INSERT INTO items_pedido (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PedidoID, item.ProductoID, item.Cantidad, item.PrecioUnitario, item.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetItemByID obtiene una línea por ID.
func (r *PedidoRepo) GetItemByID(itemID string) (*entity.ItemPedido, error) {
	query := `SELECT ` + itemColumns + ` FROM items_pedido WHERE id = $1`
	var i entity.ItemPedido
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&i.ID, &i.PedidoID, &i.ProductoID, &i.Cantidad, &i.PrecioUnitario, &i.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// GetItemsByPedidoID obtiene las líneas de un pedido en orden de inserción
// (fecha_creacion, con id como desempate estable).
func (r *PedidoRepo) GetItemsByPedidoID(pedidoID string) ([]*entity.ItemPedido, error) {
	query := `SELECT ` + itemColumns + ` FROM items_pedido WHERE pedido_id = $1 ORDER BY fecha_creacion, id`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemPedido
	for rows.Next() {
		var i entity.ItemPedido
		if err := rows.Scan(&i.ID, &i.PedidoID, &i.ProductoID, &i.Cantidad, &i.PrecioUnitario, &i.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// DeleteItem elimina una línea por ID.
func (r *PedidoRepo) DeleteItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items_pedido WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// DeleteByDistribuidora elimina primero los items de los pedidos de la
// distribuidora y luego los pedidos (cascada explícita, llamar dentro de tx).
func (r *PedidoRepo) DeleteByDistribuidora(distribuidoraID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM items_pedido WHERE pedido_id IN (SELECT id FROM pedidos WHERE distribuidora_id = $1)`,
		distribuidoraID,
	)
	if err != nil {
		return fmt.Errorf("delete items de distribuidora: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE distribuidora_id = $1`, distribuidoraID)
	if err != nil {
		return fmt.Errorf("delete pedidos de distribuidora: %w", err)
	}
	return nil
}
