package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transactionColumns = `id, reference, user_id, type, amount, method, status,
	proof_url, beneficiary_name, beneficiary_account, admin_note, created_at, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(
		&tx.ID, &tx.Reference, &tx.UserID, &tx.Type, &tx.Amount, &tx.Method, &tx.Status,
		&tx.ProofURL, &tx.BeneficiaryName, &tx.BeneficiaryAccount, &tx.AdminNote, &tx.CreatedAt, &tx.ProcessedAt,
	)
	return tx, err
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (reference, user_id, type, amount, method, status, proof_url, beneficiary_name, beneficiary_account)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tx.Reference, tx.UserID, tx.Type, tx.Amount, tx.Method, tx.Status,
		tx.ProofURL, tx.BeneficiaryName, tx.BeneficiaryAccount,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.String("reference", tx.Reference), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE user_id = $1 ORDER BY created_at DESC"
	return r.list(ctx, query, userID)
}

// FindPending returns the oldest pending transactions first.
func (r *Repository) FindPending(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE status = 'pending' ORDER BY created_at LIMIT $1"
	return r.list(ctx, query, limit)
}

func (r *Repository) GetByReferenceForUpdate(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE reference = $1 FOR UPDATE"
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get transaction", zap.String("reference", reference), zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

// Resolve moves a pending transaction to its final status. It reports false
// when the transaction was already processed.
func (r *Repository) Resolve(ctx context.Context, id int, status, note string, processedAt time.Time) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1, admin_note = $2, processed_at = $3
		WHERE id = $4 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, note, processedAt, id)
	if err != nil {
		zap.L().Error("failed to resolve transaction", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
