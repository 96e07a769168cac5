package team

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/internal/dto"
	"github.com/GlebRadaev/rentvest/internal/service/referralservice"
	"github.com/GlebRadaev/rentvest/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*TeamHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetTeamHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.TeamResponseDTO
	}{
		{
			name: "Team with earnings",
			prepareMock: func() {
				service.EXPECT().Team(ctx, 1).Return(&domain.TeamStats{
					ReferralCode: "K3M9QX2A",
					TierA:        4,
					TierB:        9,
					TierC:        2,
					ValidMembers: 3,
					TotalEarned:  750,
					RecentEarnings: []domain.ReferralCommission{
						{Tier: domain.TierA, Rate: "0.10", Amount: 500, InvestmentAmount: 5_000, CreatedAt: at},
						{Tier: domain.TierB, Rate: "0.05", Amount: 250, InvestmentAmount: 5_000, CreatedAt: at},
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.TeamResponseDTO{
				ReferralCode: "K3M9QX2A",
				TierA:        4,
				TierB:        9,
				TierC:        2,
				ValidMembers: 3,
				TotalEarned:  750,
				RecentEarnings: []dto.CommissionResponseDTO{
					{Tier: "A", Rate: "0.10", Amount: 500, InvestmentAmount: 5_000, CreatedAt: "2024-01-01T12:00:00Z"},
					{Tier: "B", Rate: "0.05", Amount: 250, InvestmentAmount: 5_000, CreatedAt: "2024-01-01T12:00:00Z"},
				},
			},
		},
		{
			name: "Empty team",
			prepareMock: func() {
				service.EXPECT().Team(ctx, 1).Return(&domain.TeamStats{ReferralCode: "K3M9QX2A"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.TeamResponseDTO{
				ReferralCode:   "K3M9QX2A",
				RecentEarnings: []dto.CommissionResponseDTO{},
			},
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().Team(ctx, 1).Return(nil, referralservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Team(ctx, 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/team", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.GetTeam(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.TeamResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
