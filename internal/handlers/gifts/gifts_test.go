package gifts

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
	"github.com/GlebRadaev/rentvest/internal/rules"
	"github.com/GlebRadaev/rentvest/internal/service/giftservice"
	"github.com/GlebRadaev/rentvest/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*GiftHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	last := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Status with cooldowns", func(t *testing.T) {
		service.EXPECT().Status(userCtx(), 1).Return(&giftservice.Status{
			UserGift:       domain.UserGift{UserID: 1, TotalBonus: 350, CheckinStreak: 3, LastCheckinAt: &last},
			ValidReferrals: 2,
			SpinUnlocked:   true,
			NextCheckInAt:  last.Add(24 * time.Hour),
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/gifts", nil).WithContext(userCtx())
		w := httptest.NewRecorder()
		handler.Status(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var body dto.GiftStatusResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, dto.GiftStatusResponseDTO{
			TotalBonus:     350,
			BonusCap:       rules.BonusCap,
			CheckinStreak:  3,
			NextCheckInAt:  "2024-01-02T12:00:00Z",
			ValidReferrals: 2,
			SpinUnlocked:   true,
		}, body)
	})

	t.Run("User not found", func(t *testing.T) {
		service.EXPECT().Status(userCtx(), 1).Return(nil, giftservice.ErrUserNotFound)

		r := httptest.NewRequest(http.MethodGet, "/gifts", nil).WithContext(userCtx())
		w := httptest.NewRecorder()
		handler.Status(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCheckInHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.CheckInResponseDTO
	}{
		{
			name: "Reward granted",
			prepareMock: func() {
				service.EXPECT().CheckIn(userCtx(), 1).Return(&giftservice.CheckInResult{Reward: 100, Streak: 2, TotalBonus: 150}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CheckInResponseDTO{Reward: 100, Streak: 2, TotalBonus: 150},
		},
		{
			name: "Already checked in",
			prepareMock: func() {
				service.EXPECT().CheckIn(userCtx(), 1).Return(nil, rules.ErrCheckInCooldown)
			},
			expectedCode:  http.StatusTooManyRequests,
			expectedError: "already checked in, come back later",
		},
		{
			name: "Bonus cap reached",
			prepareMock: func() {
				service.EXPECT().CheckIn(userCtx(), 1).Return(nil, rules.ErrBonusCapReached)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "bonus cap reached",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().CheckIn(userCtx(), 1).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/gifts/checkin", nil).WithContext(userCtx())
			w := httptest.NewRecorder()

			handler.CheckIn(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}
			var body dto.CheckInResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestSpinHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Prize won",
			prepareMock: func() {
				service.EXPECT().Spin(userCtx(), 1).Return(&giftservice.SpinResult{
					Segment:    rules.WheelSegment{ID: 3, Prize: 50, Label: "50"},
					Prize:      50,
					TotalBonus: 200,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No valid referrals",
			prepareMock: func() {
				service.EXPECT().Spin(userCtx(), 1).Return(nil, rules.ErrSpinLocked)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "invite a friend who invests to unlock the wheel",
		},
		{
			name: "Cooldown running",
			prepareMock: func() {
				service.EXPECT().Spin(userCtx(), 1).Return(nil, rules.ErrSpinCooldown)
			},
			expectedCode:  http.StatusTooManyRequests,
			expectedError: "spin not available yet",
		},
		{
			name: "Bonus cap reached",
			prepareMock: func() {
				service.EXPECT().Spin(userCtx(), 1).Return(nil, rules.ErrBonusCapReached)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "bonus cap reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/gifts/spin", nil).WithContext(userCtx())
			w := httptest.NewRecorder()

			handler.Spin(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}
			var body dto.SpinResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, dto.SpinResponseDTO{SegmentID: 3, Label: "50", Prize: 50, TotalBonus: 200}, body)
		})
	}
}

func TestSpinsHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("History", func(t *testing.T) {
		service.EXPECT().SpinHistory(userCtx(), 1).Return([]domain.SpinRecord{{ID: 1, UserID: 1, Prize: 50, CreatedAt: at}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/gifts/spins", nil).WithContext(userCtx())
		w := httptest.NewRecorder()
		handler.Spins(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var body []dto.SpinRecordResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, []dto.SpinRecordResponseDTO{{Prize: 50, CreatedAt: "2024-01-01T12:00:00Z"}}, body)
	})

	t.Run("No spins", func(t *testing.T) {
		service.EXPECT().SpinHistory(userCtx(), 1).Return(nil, nil)

		r := httptest.NewRequest(http.MethodGet, "/gifts/spins", nil).WithContext(userCtx())
		w := httptest.NewRecorder()
		handler.Spins(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().SpinHistory(userCtx(), 1).Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/gifts/spins", nil).WithContext(userCtx())
		w := httptest.NewRecorder()
		handler.Spins(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
