package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var columns = []string{
	"id", "reference", "user_id", "type", "amount", "method", "status",
	"proof_url", "beneficiary_name", "beneficiary_account", "admin_note", "created_at", "processed_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func addRow(rows *pgxmock.Rows, tx domain.Transaction) *pgxmock.Rows {
	return rows.AddRow(
		tx.ID, tx.Reference, tx.UserID, tx.Type, tx.Amount, tx.Method, tx.Status,
		tx.ProofURL, tx.BeneficiaryName, tx.BeneficiaryAccount, tx.AdminNote, tx.CreatedAt, tx.ProcessedAt,
	)
}

func sampleTransaction() domain.Transaction {
	return domain.Transaction{
		ID:        1,
		Reference: "4539578763621486",
		UserID:    1,
		Type:      domain.TransactionDeposit,
		Amount:    5000,
		Method:    domain.MethodMobileMoney,
		Status:    domain.TransactionPending,
		ProofURL:  "https://proof.example/1.png",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	tx := sampleTransaction()
	tx.ID = 0
	createdAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO transactions")

	mock.ExpectQuery(query).
		WithArgs(tx.Reference, tx.UserID, tx.Type, tx.Amount, tx.Method, tx.Status, tx.ProofURL, "", "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(9, createdAt))

	created, err := repo.Create(context.Background(), &tx)
	assert.NoError(t, err)
	assert.Equal(t, 9, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)

	mock.ExpectQuery(query).
		WithArgs(tx.Reference, tx.UserID, tx.Type, tx.Amount, tx.Method, tx.Status, tx.ProofURL, "", "").
		WillReturnError(errors.New("duplicate reference"))
	_, err = repo.Create(context.Background(), &tx)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	tx := sampleTransaction()
	query := regexp.QuoteMeta("FROM transactions WHERE user_id = $1 ORDER BY created_at DESC")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Transaction
	}{
		{
			name: "Transactions found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(addRow(pgxmock.NewRows(columns), tx))
			},
			result: []domain.Transaction{tx},
		},
		{
			name: "No transactions",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows(columns))
			},
			result: nil,
		},
		{
			name: "Query error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Row error",
			mockSetup: func() {
				rows := addRow(pgxmock.NewRows(columns), tx).RowError(0, errors.New("row error"))
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock := NewMock(t)
	tx := sampleTransaction()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending' ORDER BY created_at LIMIT $1")).
		WithArgs(50).
		WillReturnRows(addRow(pgxmock.NewRows(columns), tx))

	result, err := repo.FindPending(context.Background(), 50)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Transaction{tx}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByReferenceForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	tx := sampleTransaction()
	query := regexp.QuoteMeta("FROM transactions WHERE reference = $1 FOR UPDATE")

	mock.ExpectQuery(query).WithArgs(tx.Reference).WillReturnRows(addRow(pgxmock.NewRows(columns), tx))
	got, err := repo.GetByReferenceForUpdate(context.Background(), tx.Reference)
	assert.NoError(t, err)
	assert.Equal(t, &tx, got)

	mock.ExpectQuery(query).WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	got, err = repo.GetByReferenceForUpdate(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)

	mock.ExpectQuery(query).WithArgs("broken").WillReturnError(errors.New("database error"))
	_, err = repo.GetByReferenceForUpdate(context.Background(), "broken")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Resolve(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("WHERE id = $4 AND status = 'pending'")

	mock.ExpectExec(query).WithArgs(domain.TransactionSuccess, "", at, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.Resolve(context.Background(), 1, domain.TransactionSuccess, "", at)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(query).WithArgs(domain.TransactionRejected, "bad proof", at, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.Resolve(context.Background(), 1, domain.TransactionRejected, "bad proof", at)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
