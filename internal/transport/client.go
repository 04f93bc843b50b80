package transport

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"superhero/directory/internal/config"
	"superhero/directory/internal/proxy"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// Requester executes a Request and delivers the raw body exactly once
type Requester interface {
	Response(ctx context.Context, req Request) <-chan Result[[]byte]
}

type Client struct {
	cfg     config.TransportConfig
	rl      ratelimit.Limiter
	proxies proxy.ProxySupplier

	mu      sync.Mutex
	clients map[string]*resty.Client // by proxy URL, "" is the direct connection
}

// NewClient creates a client that takes the next proxy from proxySupplier for
// every request. A nil supplier or an empty pool means direct connections.
func NewClient(cfg config.TransportConfig, proxySupplier proxy.ProxySupplier) *Client {
	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	if proxySupplier != nil && proxySupplier.Len() > 0 {
		log.Infof("🔗 Rotating through %d proxies", proxySupplier.Len())
	}

	return &Client{
		cfg:     cfg,
		rl:      rl,
		proxies: proxySupplier,
		clients: make(map[string]*resty.Client),
	}
}

// httpClient returns the resty client bound to the next proxy. Clients are
// created once per proxy and reused so connections stay pooled.
func (c *Client) httpClient() (*resty.Client, string) {
	proxyURL := ""
	if c.proxies != nil {
		proxyURL = c.proxies.Get()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[proxyURL]; ok {
		return client, proxyURL
	}

	client := resty.New().
		SetTimeout(time.Duration(c.cfg.Timeout) * time.Second).
		SetRetryCount(0)

	if c.cfg.UserAgent != "" {
		client.SetHeader("User-Agent", c.cfg.UserAgent)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
		log.Infof("🔗 Using proxy: %s", proxyURL)
	}

	c.clients[proxyURL] = client
	return client, proxyURL
}

// Response runs the request on a background goroutine. The returned channel
// yields one Result and is then closed.
func (c *Client) Response(ctx context.Context, req Request) <-chan Result[[]byte] {
	out := make(chan Result[[]byte], 1)

	go func() {
		defer close(out)

		body, err := c.do(ctx, req)
		if err != nil {
			out <- Failure[[]byte](err)
			return
		}
		out <- Success(body)
	}()

	return out
}

func (c *Client) do(ctx context.Context, req Request) ([]byte, error) {
	wire, err := req.encode()
	if err != nil {
		return nil, &ClientError{Err: err}
	}

	httpClient, proxyURL := c.httpClient()

	logger := log.WithFields(log.Fields{
		"request_id": uuid.NewString(),
		"method":     wire.method,
		"url":        wire.url,
	})
	if proxyURL != "" {
		logger = logger.WithField("proxy", proxyURL)
	}

	c.rl.Take()

	r := httpClient.R().SetContext(ctx)
	for k := range wire.header {
		r.SetHeader(k, wire.header.Get(k))
	}
	if wire.body != nil {
		r.SetBody(wire.body)
	}

	start := time.Now()
	resp, err := r.Execute(wire.method, wire.url)
	if err != nil {
		logger.Debugf("Request failed after %v: %v", time.Since(start).Round(time.Millisecond), err)
		return nil, converted(err)
	}

	body := resp.Bytes()
	logger.WithField("status", resp.StatusCode()).
		Debugf("Received %d bytes in %v", len(body), time.Since(start).Round(time.Millisecond))

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &ServerError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Header:     resp.Header(),
			Body:       body,
		}
	}

	if len(body) == 0 {
		return nil, ErrNoData
	}

	return body, nil
}

// ResponseObject executes req through requester and decodes the body as T
func ResponseObject[T any](ctx context.Context, requester Requester, req Request) <-chan Result[T] {
	return Map(requester.Response(ctx, req), Decode[T])
}

// Decode unmarshals data into T, wrapping any failure in a DecodingError
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, &DecodingError{Err: err}
	}
	return v, nil
}
