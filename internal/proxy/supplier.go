package proxy

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"
)

const (
	maxParallelChecks = 16
	checkTimeout      = 5 * time.Second
)

// ProxySupplier hands out working proxies in round-robin order
type ProxySupplier interface {
	Get() string
	Len() int
}

type proxySupplier struct {
	mu      sync.Mutex
	proxies []string
	current int
}

// NewProxySupplier checks every proxy against testURL in parallel and keeps
// the ones that answer with a non-error status. Input order is preserved.
func NewProxySupplier(ctx context.Context, proxies []string, testURL string) ProxySupplier {
	if len(proxies) == 0 {
		return &proxySupplier{}
	}

	log.Infof("🔄 Checking %d proxies against %s...", len(proxies), testURL)

	working := make([]bool, len(proxies))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelChecks)

	for i, proxyURL := range proxies {
		g.Go(func() error {
			working[i] = isProxyValid(ctx, proxyURL, testURL)
			return nil
		})
	}
	_ = g.Wait()

	valid := make([]string, 0, len(proxies))
	for i, ok := range working {
		if ok {
			valid = append(valid, proxies[i])
		}
	}

	log.Infof("✅ %d of %d proxies are usable", len(valid), len(proxies))

	return &proxySupplier{proxies: valid}
}

// Get returns the next proxy URL, or "" when none are usable
func (p *proxySupplier) Get() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	proxyURL := p.proxies[p.current]
	p.current = (p.current + 1) % len(p.proxies)

	return proxyURL
}

func (p *proxySupplier) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.proxies)
}

func isProxyValid(ctx context.Context, proxyURL, testURL string) bool {
	client := resty.New().
		SetTimeout(checkTimeout).
		SetRetryCount(0).
		SetProxy(proxyURL)

	resp, err := client.R().
		SetContext(ctx).
		Get(testURL)
	if err != nil {
		log.Debugf("❌ Proxy %s failed: %v", proxyURL, err)
		return false
	}

	if resp.IsError() {
		log.Debugf("❌ Proxy %s answered %s", proxyURL, resp.Status())
		return false
	}

	return true
}
