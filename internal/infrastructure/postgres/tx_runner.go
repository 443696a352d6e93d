package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pedidos-api/internal/application/pedido"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// Ensure TxRunner implements pedido.TxRunner and usecase.CascadeTxRunner.
var _ pedido.TxRunner = (*TxRunner)(nil)
var _ usecase.CascadeTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es el scope de las mutaciones del agregado Pedido (items y estado).
func (r *TxRunner) Run(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pedidoRepo := NewPedidoRepository(tx)
	productoRepo := NewProductoRepository(tx)

	if err := fn(pedidoRepo, productoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCascade inicia una transacción para el borrado en cascada de una
// distribuidora: items y pedidos primero, la distribuidora al final.
func (r *TxRunner) RunCascade(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	distribuidoraRepo repository.DistribuidoraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pedidoRepo := NewPedidoRepository(tx)
	distribuidoraRepo := NewDistribuidoraRepository(tx)

	if err := fn(pedidoRepo, distribuidoraRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
