package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedeja/delivery-api/internal/application/onboarding"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

var _ onboarding.SubmitTx = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOnboarding abre uma transação, executa fn com o repositório de
// estabelecimentos amarrado à tx e faz Commit ou Rollback.
func (r *TxRunner) RunOnboarding(ctx context.Context, fn func(estRepo repository.EstablishmentRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	estRepo := NewEstablishmentRepository(tx)

	if err := fn(estRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
