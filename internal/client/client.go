// Package client реализует HTTP-клиент сервиса диапазонов на базе resty.
package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/maynagashev/go-rangerand/internal/contracts/ranges"
	"github.com/maynagashev/go-rangerand/pkg/random"
	"github.com/maynagashev/go-rangerand/pkg/response"
)

const (
	maxRetries   = 3
	retryWait    = time.Second
	retryMaxWait = 5 * time.Second
)

// ErrNotFound возвращается, если сервер ответил 404.
var ErrNotFound = errors.New("not found")

// ResponseError ответ сервера с кодом ошибки.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Client HTTP-клиент сервиса.
type Client struct {
	client   *resty.Client
	compress bool
}

type Option func(*Client)

// WithCompression включает сжатие тела запросов gzip.
func WithCompression(enabled bool) Option {
	return func(c *Client) {
		c.compress = enabled
	}
}

// WithRetries задает количество повторов при сетевых ошибках.
func WithRetries(count int, wait time.Duration) Option {
	return func(c *Client) {
		c.client.SetRetryCount(count).SetRetryWaitTime(wait).SetRetryMaxWaitTime(wait)
	}
}

// New создает клиент для сервера по адресу serverURL, например http://localhost:8080.
func New(serverURL string, opts ...Option) *Client {
	c := &Client{
		client: resty.New().
			SetBaseURL(serverURL).
			SetHeader("Content-Type", "application/json").
			SetRetryCount(maxRetries).
			SetRetryWaitTime(retryWait).
			SetRetryMaxWaitTime(retryMaxWait).
			AddRetryCondition(func(_ *resty.Response, err error) bool {
				return isRetriableSendError(err)
			}),
		compress: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sample генерирует count значений из диапазона на сервере.
func (c *Client) Sample(ctx context.Context, r random.Range, count int) ([]float64, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	var out ranges.SampleResponse
	req, err := c.request(ctx, ranges.SampleRequest{Range: raw, Count: count})
	if err != nil {
		return nil, err
	}
	if err = do(req.SetResult(&out), http.MethodPost, "/sample"); err != nil {
		return nil, err
	}
	return out.Values, nil
}

// PutRange сохраняет диапазон под именем name.
func (c *Client) PutRange(ctx context.Context, name string, r random.Range) error {
	req, err := c.request(ctx, r)
	if err != nil {
		return err
	}
	return do(req.SetPathParam("name", name), http.MethodPut, "/ranges/{name}")
}

// GetRange читает сохраненный диапазон.
func (c *Client) GetRange(ctx context.Context, name string) (random.Range, error) {
	res, err := c.client.R().SetContext(ctx).SetPathParam("name", name).Get("/ranges/{name}")
	if err != nil {
		return random.Range{}, err
	}
	if err = checkResponse(res); err != nil {
		return random.Range{}, err
	}
	return random.Parse(res.String())
}

// DeleteRange удаляет сохраненный диапазон.
func (c *Client) DeleteRange(ctx context.Context, name string) error {
	req := c.client.R().SetContext(ctx).SetPathParam("name", name)
	return do(req, http.MethodDelete, "/ranges/{name}")
}

// ListRanges возвращает все сохраненные диапазоны.
func (c *Client) ListRanges(ctx context.Context) ([]ranges.NamedRange, error) {
	var items []ranges.NamedRange
	if err := do(c.client.R().SetContext(ctx).SetResult(&items), http.MethodGet, "/"); err != nil {
		return nil, err
	}
	return items, nil
}

// SampleNamed генерирует count значений из сохраненного диапазона.
func (c *Client) SampleNamed(ctx context.Context, name string, count int) ([]float64, error) {
	var out ranges.SampleResponse
	req := c.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&out)
	if count > 0 {
		req.SetQueryParam("count", strconv.Itoa(count))
	}
	if err := do(req, http.MethodGet, "/ranges/{name}/sample"); err != nil {
		return nil, err
	}
	return out.Values, nil
}

// Choice выбирает случайный элемент массива на сервере.
func (c *Client) Choice(ctx context.Context, items []any) (any, error) {
	var out ranges.ChoiceResponse
	req, err := c.request(ctx, ranges.ItemsRequest{Items: items})
	if err != nil {
		return nil, err
	}
	if err = do(req.SetResult(&out), http.MethodPost, "/choice"); err != nil {
		return nil, err
	}
	return out.Item, nil
}

// Shuffle перемешивает массив на сервере.
func (c *Client) Shuffle(ctx context.Context, items []any) ([]any, error) {
	var out ranges.ItemsResponse
	req, err := c.request(ctx, ranges.ItemsRequest{Items: items})
	if err != nil {
		return nil, err
	}
	if err = do(req.SetResult(&out), http.MethodPost, "/shuffle"); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// request готовит запрос с JSON-телом, при необходимости сжатым.
func (c *Client) request(ctx context.Context, body any) (*resty.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req := c.client.R().SetContext(ctx)
	if c.compress {
		if data, err = compress(data); err != nil {
			return nil, err
		}
		req.SetHeader("Content-Encoding", "gzip")
	}
	return req.SetBody(data), nil
}

func do(req *resty.Request, method, url string) error {
	res, err := req.Execute(method, url)
	if err != nil {
		return err
	}
	return checkResponse(res)
}

func checkResponse(res *resty.Response) error {
	slog.Debug("received server response",
		"url", res.Request.URL,
		"status_code", res.StatusCode(),
		"duration", res.Time())

	if !res.IsError() {
		return nil
	}

	msg := res.String()
	var body response.Response
	if err := json.Unmarshal(res.Body(), &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &ResponseError{StatusCode: res.StatusCode(), Message: msg}
}

// compress сжимает тело запроса методом gzip.
func compress(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w, err := gzip.NewWriterLevel(&b, gzip.BestSpeed)
	if err != nil {
		return nil, fmt.Errorf("failed init compress writer: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return nil, fmt.Errorf("failed write data to compress buffer: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("failed compress data: %w", err)
	}
	return b.Bytes(), nil
}

// isRetriableSendError проверяет, можно ли повторить запрос после ошибки.
func isRetriableSendError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var netOpErr *net.OpError
	if errors.As(err, &netOpErr) {
		return true
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) || errors.Is(err, net.ErrClosed)
}
