package clients

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const timeout = time.Second * 15

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

type HTTPClientAdapter struct {
	client *resty.Client
}

func NewHTTPClientAdapter(client *resty.Client) *HTTPClientAdapter {
	return &HTTPClientAdapter{client: client}
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.GetClient().Do(req)
}

func (h *HTTPClientAdapter) Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req := h.client.R()
	if headers != nil {
		req.SetHeaderMultiValues(headers)
	}

	resp, err := req.Get(url)
	if err != nil {
		return
	}

	statusCode = resp.StatusCode()
	respBody = resp.Body()
	respHeaders = resp.Header()
	return
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: NewHTTPClientAdapter(
			resty.New().
				SetTimeout(timeout).
				SetHeader("Accept", "application/json"),
		),
	}
}

func (h *HTTPClient) Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	return h.client.Get(url, headers)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
