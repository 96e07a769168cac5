package clients

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/24hr", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test", r.Header.Get("X-Client"))
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"symbol":"BTCUSDT"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	status, body, headers, err := client.Get(srv.URL+"/api/v3/ticker/24hr?symbol=BTCUSDT", http.Header{"X-Client": []string{"test"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"symbol":"BTCUSDT"}`, string(body))
	assert.Equal(t, "3", headers.Get("Retry-After"))
}

func TestHTTPClient_GetNilHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	status, body, _, err := NewHTTPClient().Get(srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Empty(t, body)
}

func TestHTTPClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, http.NoBody)
	require.NoError(t, err)

	resp, err := NewHTTPClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Get("http://feed/ticker", gomock.Nil()).Return(0, nil, nil, errors.New("connection refused"))

	client := NewHTTPClient()
	client.SetClient(mock)

	_, _, _, err := client.Get("http://feed/ticker", nil)
	assert.EqualError(t, err, "connection refused")
}
