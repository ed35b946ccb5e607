package health

import (
	"context"
	"fmt"
	"net/http"
)

// HTTPCheck probes url with a GET request using the given client and treats
// any status outside 2xx as a failure. Pass nil to use http.DefaultClient;
// the registry's per-check timeout bounds the request either way.
func HTTPCheck(url string, client *http.Client) CheckFunc {
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("probe %s: %w", url, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("probe %s: unexpected status %d", url, resp.StatusCode)
		}
		return nil
	}
}

// PingCheck adapts a ping-style function (database pools, caches, brokers
// all expose one) into a CheckFunc.
func PingCheck(ping func(ctx context.Context) error) CheckFunc {
	return func(ctx context.Context) error {
		return ping(ctx)
	}
}
