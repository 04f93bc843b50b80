package proxy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProxySupplier_Empty(t *testing.T) {
	s := NewProxySupplier(context.Background(), nil, "http://example.invalid")
	require.Equal(t, 0, s.Len())
	require.Equal(t, "", s.Get())
}

func TestProxySupplier_KeepsOnlyWorkingProxies(t *testing.T) {
	// An HTTP proxy receives the absolute-form request for an http:// target.
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer bad.Close()

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	s := NewProxySupplier(context.Background(), []string{bad.URL, good.URL, deadURL}, "http://marvel.test/v1/public/characters")

	require.Equal(t, 1, s.Len())
	require.Equal(t, good.URL, s.Get())
}

func TestProxySupplier_RoundRobin(t *testing.T) {
	s := &proxySupplier{proxies: []string{"a", "b", "c"}}

	got := []string{s.Get(), s.Get(), s.Get(), s.Get()}
	require.Equal(t, []string{"a", "b", "c", "a"}, got)
}
