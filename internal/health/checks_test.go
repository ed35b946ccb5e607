package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPCheck_HealthyUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer upstream.Close()

	check := HTTPCheck(upstream.URL, upstream.Client())

	if err := check(context.Background()); err != nil {
		t.Errorf("check against healthy upstream: %v", err)
	}
}

func TestHTTPCheck_ErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	check := HTTPCheck(upstream.URL, upstream.Client())

	if err := check(context.Background()); err == nil {
		t.Error("check against 502 upstream: got nil error, want failure")
	}
}

func TestHTTPCheck_UnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	check := HTTPCheck(url, nil)

	if err := check(context.Background()); err == nil {
		t.Error("check against closed upstream: got nil error, want failure")
	}
}

func TestPingCheck_PassesThrough(t *testing.T) {
	wantErr := errors.New("pool exhausted")
	check := PingCheck(func(ctx context.Context) error { return wantErr })

	if err := check(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}

	check = PingCheck(func(ctx context.Context) error { return nil })
	if err := check(context.Background()); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}
