package rate_limiter

import (
	"context"
	"testing"
	"time"
)

func TestHostRateLimiter_WaitForHost(t *testing.T) {
	tests := []struct {
		name    string
		urlStr  string
		wantErr bool
	}{
		{
			name:    "valid provider URL",
			urlStr:  "https://quotes.example.com/v1/quote?symbol=AAPL",
			wantErr: false,
		},
		{
			name:    "missing host",
			urlStr:  "not-a-url",
			wantErr: true,
		},
		{
			name:    "empty URL",
			urlStr:  "",
			wantErr: true,
		},
	}

	limiter := NewHostRateLimiter(10 * time.Millisecond)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := limiter.WaitForHost(context.Background(), tt.urlStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("WaitForHost() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHostRateLimiter_ThrottlesSameHost(t *testing.T) {
	limiter := NewHostRateLimiter(150 * time.Millisecond)
	ctx := context.Background()

	if err := limiter.WaitForHost(ctx, "https://quotes.example.com/v1/quote"); err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	start := time.Now()
	if err := limiter.WaitForHost(ctx, "https://quotes.example.com/v1/trending"); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("second call to same host was not throttled: %v", elapsed)
	}

	// A different host has its own bucket.
	start = time.Now()
	if err := limiter.WaitForHost(ctx, "https://other.example.net/v1/quote"); err != nil {
		t.Fatalf("third call failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("different host was throttled unexpectedly: %v", elapsed)
	}
}

func TestHostRateLimiter_ContextCancellation(t *testing.T) {
	limiter := NewHostRateLimiter(time.Second)
	url := "https://quotes.example.com/v1/quote"

	if err := limiter.WaitForHost(context.Background(), url); err != nil {
		t.Fatalf("setup call failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.WaitForHost(ctx, url); err == nil {
		t.Error("expected context cancellation error, got nil")
	}
}
