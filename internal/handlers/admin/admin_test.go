package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/dto"
	balanceservice "github.com/GlebRadaev/rentvest/internal/service/balanceservice"
)

const reference = "4539578763621486"

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withReference(r *http.Request, ref string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("reference", ref)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPendingHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Pending list",
			prepareMock: func() {
				service.EXPECT().PendingTransactions(context.Background()).Return([]domain.Transaction{
					{Reference: reference, Type: domain.TransactionDeposit, Amount: 5_000, Status: domain.TransactionPending, CreatedAt: at},
					{Reference: "4024007159584688", Type: domain.TransactionWithdrawal, Amount: 2_000, Status: domain.TransactionPending, CreatedAt: at},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Nothing pending",
			prepareMock: func() {
				service.EXPECT().PendingTransactions(context.Background()).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().PendingTransactions(context.Background()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/admin/transactions/pending", nil)
			w := httptest.NewRecorder()

			handler.Pending(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.TransactionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, reference, body[0].Reference)
			}
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)
	processed := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		reference     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Approved",
			reference: reference,
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), reference).Return(&domain.Transaction{
					Reference: reference, Type: domain.TransactionDeposit, Amount: 5_000,
					Status: domain.TransactionSuccess, ProcessedAt: &processed,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Malformed reference",
			reference:     "4539578763621487",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid reference",
		},
		{
			name:          "Too short reference",
			reference:     "0",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid reference",
		},
		{
			name:      "Unknown reference",
			reference: reference,
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), reference).Return(nil, balanceservice.ErrTransactionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "transaction not found",
		},
		{
			name:      "Already processed",
			reference: reference,
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), reference).Return(nil, balanceservice.ErrAlreadyProcessed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "transaction already processed",
		},
		{
			name:      "Withdrawal exceeds balance",
			reference: reference,
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), reference).Return(nil, balanceservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance",
		},
		{
			name:      "Internal server error",
			reference: reference,
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), reference).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/transactions/"+tt.reference+"/approve", nil)
			r = withReference(r, tt.reference)
			w := httptest.NewRecorder()

			handler.Approve(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.TransactionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "success", body.Status)
				assert.Equal(t, "2024-01-01T13:00:00Z", body.ProcessedAt)
			}
		})
	}
}

func TestRejectHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          io.Reader
		reference     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Rejected with note",
			body:      bytes.NewBufferString(`{"note":"Proof of payment is unreadable"}`),
			reference: reference,
			prepareMock: func() {
				service.EXPECT().Reject(gomock.Any(), reference, "Proof of payment is unreadable").
					Return(&domain.Transaction{Reference: reference, Status: domain.TransactionRejected, AdminNote: "Proof of payment is unreadable"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Rejected without body",
			body:      http.NoBody,
			reference: reference,
			prepareMock: func() {
				service.EXPECT().Reject(gomock.Any(), reference, "").
					Return(&domain.Transaction{Reference: reference, Status: domain.TransactionRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Broken body",
			body:          bytes.NewBufferString(`{"note":`),
			reference:     reference,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Malformed reference",
			body:          http.NoBody,
			reference:     "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid reference",
		},
		{
			name:          "Too short reference",
			body:          http.NoBody,
			reference:     "0",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid reference",
		},
		{
			name:      "Already processed",
			body:      http.NoBody,
			reference: reference,
			prepareMock: func() {
				service.EXPECT().Reject(gomock.Any(), reference, "").Return(nil, balanceservice.ErrAlreadyProcessed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "transaction already processed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/transactions/"+tt.reference+"/reject", tt.body)
			r = withReference(r, tt.reference)
			w := httptest.NewRecorder()

			handler.Reject(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.TransactionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "rejected", body.Status)
			}
		})
	}
}

func TestStatsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Dashboard", func(t *testing.T) {
		service.EXPECT().Stats(context.Background()).Return(&domain.AdminStats{
			TotalUsers: 120, PendingDeposits: 4, PendingWithdrawals: 2,
			TotalDeposited: 2_500_000, TotalWithdrawn: 300_000, TotalInvested: 1_900_000, ActiveRentals: 87,
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		w := httptest.NewRecorder()
		handler.Stats(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var body dto.AdminStatsResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, dto.AdminStatsResponseDTO{
			TotalUsers: 120, PendingDeposits: 4, PendingWithdrawals: 2,
			TotalDeposited: 2_500_000, TotalWithdrawn: 300_000, TotalInvested: 1_900_000, ActiveRentals: 87,
		}, body)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().Stats(context.Background()).Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		w := httptest.NewRecorder()
		handler.Stats(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
