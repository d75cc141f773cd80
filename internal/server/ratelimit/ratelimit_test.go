package ratelimit

import (
	"testing"
	"time"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/portfolio/generate", Method: "POST", Limit: 30, Window: time.Hour, Burst: 2},
		},
	}
}

func TestLimiter_BurstThenDenied(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/portfolio/generate", "POST")
		if !allowed {
			t.Fatalf("request %d should be within burst", i+1)
		}
	}

	allowed, info := l.Allow("1.2.3.4", "/portfolio/generate", "POST")
	if allowed {
		t.Error("third request should exceed burst")
	}
	if info.Limit != 30 {
		t.Errorf("info.Limit = %d, want 30", info.Limit)
	}
	if info.RetryAfter <= 0 {
		t.Error("denied request should carry a retry hint")
	}
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		l.Allow("1.1.1.1", "/portfolio/generate", "POST")
	}
	if allowed, _ := l.Allow("1.1.1.1", "/portfolio/generate", "POST"); allowed {
		t.Error("first client should be exhausted")
	}
	if allowed, _ := l.Allow("2.2.2.2", "/portfolio/generate", "POST"); !allowed {
		t.Error("second client should have a fresh bucket")
	}
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 500; i++ {
		if allowed, _ := l.Allow("1.2.3.4", "/health", "GET"); !allowed {
			t.Fatalf("health check denied at request %d", i+1)
		}
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := l.Allow("1.2.3.4", "/portfolio/generate", "POST"); !allowed {
			t.Fatal("disabled limiter must allow everything")
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	if allowed, _ := l.Allow("6.6.6.6", "/health", "POST"); allowed {
		t.Error("blacklisted client must be denied")
	}
}

func TestMatchEndpoint_PrefixAndExact(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/portfolio/generate", Method: "POST", Limit: 30},
		{Path: "/portfolios/", Method: "GET", Limit: 200},
	}

	if got := matchEndpoint("/portfolio/generate", "POST", configs); got == nil || got.Limit != 30 {
		t.Errorf("exact match failed: %+v", got)
	}
	if got := matchEndpoint("/portfolios/abc123", "GET", configs); got == nil || got.Limit != 200 {
		t.Errorf("prefix match failed: %+v", got)
	}
	if got := matchEndpoint("/portfolio/generate", "GET", configs); got != nil {
		t.Errorf("method mismatch should not match: %+v", got)
	}
	if got := matchEndpoint("/health", "GET", configs); got == nil || got.Limit != 0 {
		t.Errorf("health should be unlimited: %+v", got)
	}
}
