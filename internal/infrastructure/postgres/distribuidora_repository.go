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

var _ repository.DistribuidoraRepository = (*DistribuidoraRepo)(nil)

const distribuidoraColumns = `id, codigo, nombre, contacto, telefono, email, direccion, activa, fecha_creacion`

// DistribuidoraRepo implementación del puerto DistribuidoraRepository sobre PostgreSQL.
type DistribuidoraRepo struct {
	q Querier
}

// NewDistribuidoraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDistribuidoraRepository(q Querier) *DistribuidoraRepo {
	return &DistribuidoraRepo{q: q}
}

// Create persiste una nueva distribuidora. El código tiene constraint único.
func (r *DistribuidoraRepo) Create(d *entity.Distribuidora) error {
	query := `
		INSERT INTO distribuidoras (` + distribuidoraColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Codigo, d.Nombre, d.Contacto, d.Telefono, d.Email, d.Direccion, d.Activa, d.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert distribuidora: %w", err)
	}
	return nil
}

// GetByID obtiene una distribuidora por ID.
func (r *DistribuidoraRepo) GetByID(id string) (*entity.Distribuidora, error) {
	return r.getBy(`id = $1`, id)
}

// GetByCodigo busca por código entre todas las distribuidoras, activas o no.
func (r *DistribuidoraRepo) GetByCodigo(codigo string) (*entity.Distribuidora, error) {
	return r.getBy(`codigo = $1`, codigo)
}

func (r *DistribuidoraRepo) getBy(where string, arg any) (*entity.Distribuidora, error) {
	query := `SELECT ` + distribuidoraColumns + ` FROM distribuidoras WHERE ` + where
	var d entity.Distribuidora
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.Codigo, &d.Nombre, &d.Contacto, &d.Telefono, &d.Email, &d.Direccion, &d.Activa, &d.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distribuidora: %w", err)
	}
	return &d, nil
}

// Update actualiza una distribuidora existente.
func (r *DistribuidoraRepo) Update(d *entity.Distribuidora) error {
	query := `
		UPDATE distribuidoras SET codigo = $2, nombre = $3, contacto = $4, telefono = $5, email = $6, direccion = $7, activa = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Codigo, d.Nombre, d.Contacto, d.Telefono, d.Email, d.Direccion, d.Activa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("update distribuidora: %w", err)
	}
	return nil
}

// ListActivas lista distribuidoras activas con búsqueda por nombre o código,
// orden estable por fecha de creación para paginación.
func (r *DistribuidoraRepo) ListActivas(search string, limit, offset int) ([]*entity.Distribuidora, error) {
	query := `
		SELECT ` + distribuidoraColumns + ` FROM distribuidoras
		WHERE activa = true
		  AND ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR codigo ILIKE '%' || $1 || '%')
		ORDER BY fecha_creacion DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list distribuidoras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distribuidora
	for rows.Next() {
		var d entity.Distribuidora
		if err := rows.Scan(&d.ID, &d.Codigo, &d.Nombre, &d.Contacto, &d.Telefono,
			&d.Email, &d.Direccion, &d.Activa, &d.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan distribuidora: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// CountActivas cuenta distribuidoras activas.
func (r *DistribuidoraRepo) CountActivas() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM distribuidoras WHERE activa = true`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count distribuidoras: %w", err)
	}
	return n, nil
}

// Delete elimina una distribuidora por ID. Los pedidos asociados deben
// eliminarse antes, dentro de la misma transacción (ver TxRunner.RunCascade).
func (r *DistribuidoraRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM distribuidoras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete distribuidora: %w", err)
	}
	return nil
}
