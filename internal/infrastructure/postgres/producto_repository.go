package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, codigo, nombre, precio, stock, descripcion, activo, fecha_creacion`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto. El código tiene constraint único.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Precio, p.Stock, p.Descripcion, p.Activo, p.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.getBy(`id = $1`, id)
}

// GetByCodigo busca por código entre todos los productos, activos o no.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.getBy(`codigo = $1`, codigo)
}

func (r *ProductoRepo) getBy(where string, arg any) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE ` + where
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Precio, &p.Stock, &p.Descripcion, &p.Activo, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET codigo = $2, nombre = $3, precio = $4, stock = $5, descripcion = $6, activo = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Precio, p.Stock, p.Descripcion, p.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// ListActivos lista productos activos con búsqueda por nombre o código.
func (r *ProductoRepo) ListActivos(search string, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + ` FROM productos
		WHERE activo = true
		  AND ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR codigo ILIKE '%' || $1 || '%')
		ORDER BY fecha_creacion DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Precio, &p.Stock,
			&p.Descripcion, &p.Activo, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountActivos cuenta productos activos.
func (r *ProductoRepo) CountActivos() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM productos WHERE activo = true`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return n, nil
}
