package referralrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateCommission(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := domain.ReferralCommission{
		SponsorID:        1,
		ReferredUserID:   2,
		RentalID:         3,
		InvestmentAmount: 5000,
		Tier:             domain.TierA,
		Rate:             "0.10",
		Amount:           500,
	}
	query := regexp.QuoteMeta("INSERT INTO referral_commissions")

	mock.ExpectQuery(query).
		WithArgs(1, 2, 3, int64(5000), domain.TierA, "0.10", int64(500)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, createdAt))
	saved, err := repo.CreateCommission(context.Background(), &c)
	assert.NoError(t, err)
	assert.Equal(t, 4, saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)

	mock.ExpectQuery(query).
		WithArgs(1, 2, 3, int64(5000), domain.TierA, "0.10", int64(500)).
		WillReturnError(errors.New("duplicate"))
	_, err = repo.CreateCommission(context.Background(), &c)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindCommissions(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "sponsor_id", "referred_user_id", "rental_id", "investment_amount", "tier", "rate", "amount", "created_at"}
	query := regexp.QuoteMeta("FROM referral_commissions")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.ReferralCommission
	}{
		{
			name: "Commissions found",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, 1, 2, 3, int64(5000), domain.TierA, "0.10", int64(500), createdAt).
					AddRow(2, 1, 5, 6, int64(10000), domain.TierB, "0.05", int64(500), createdAt)
				mock.ExpectQuery(query).WithArgs(1, 20).WillReturnRows(rows)
			},
			result: []domain.ReferralCommission{
				{ID: 1, SponsorID: 1, ReferredUserID: 2, RentalID: 3, InvestmentAmount: 5000, Tier: domain.TierA, Rate: "0.10", Amount: 500, CreatedAt: createdAt},
				{ID: 2, SponsorID: 1, ReferredUserID: 5, RentalID: 6, InvestmentAmount: 10000, Tier: domain.TierB, Rate: "0.05", Amount: 500, CreatedAt: createdAt},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 20).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindCommissions(context.Background(), 1, 20)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_TotalEarned(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM referral_commissions WHERE sponsor_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(1500)))

	total, err := repo.TotalEarned(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), total)
}

func TestRepository_TeamCounts(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("WITH a AS (SELECT referral_code, total_invested FROM users WHERE referred_by = $1)")

	mock.ExpectQuery(query).
		WithArgs("ABCD1234").
		WillReturnRows(pgxmock.NewRows([]string{"a", "b", "c", "valid"}).AddRow(3, 5, 1, 2))
	stats, err := repo.TeamCounts(context.Background(), "ABCD1234")
	assert.NoError(t, err)
	assert.Equal(t, &domain.TeamStats{ReferralCode: "ABCD1234", TierA: 3, TierB: 5, TierC: 1, ValidMembers: 2}, stats)

	mock.ExpectQuery(query).WithArgs("ABCD1234").WillReturnError(errors.New("database error"))
	_, err = repo.TeamCounts(context.Background(), "ABCD1234")
	assert.Error(t, err)
}

func TestRepository_CountValidReferrals(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE referred_by = $1 AND total_invested > 0")).
		WithArgs("ABCD1234").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(61))

	count, err := repo.CountValidReferrals(context.Background(), "ABCD1234")
	assert.NoError(t, err)
	assert.Equal(t, 61, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
