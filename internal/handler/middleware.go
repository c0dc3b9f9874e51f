package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds standard security response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// RateLimiter applies a per-IP sliding-window limit to the public submission
// endpoints so the contact form cannot be flooded.
type RateLimiter struct {
	maxPerMinute int
	mu           sync.Mutex
	clients      map[string][]time.Time
}

// NewRateLimiter creates a rate limiter with the given submissions-per-minute
// cap and starts its cleanup loop.
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute: maxPerMinute,
		clients:      make(map[string][]time.Time),
	}
	go rl.cleanupLoop()
	return rl
}

// cleanupLoop periodically drops IPs whose whole window has expired.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-time.Minute)
		rl.mu.Lock()
		for ip, stamps := range rl.clients {
			if len(stamps) == 0 || stamps[len(stamps)-1].Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware enforces the limit, answering 429 with a Retry-After hint when
// a client exceeds it.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		now := time.Now()
		windowStart := now.Add(-time.Minute)

		rl.mu.Lock()
		stamps := rl.clients[ip]
		valid := stamps[:0]
		for _, ts := range stamps {
			if ts.After(windowStart) {
				valid = append(valid, ts)
			}
		}

		if len(valid) >= rl.maxPerMinute {
			oldest := valid[0]
			rl.clients[ip] = valid
			rl.mu.Unlock()

			retry := int(oldest.Add(time.Minute).Sub(now).Seconds()) + 1
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		rl.clients[ip] = append(valid, now)
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the last X-Forwarded-For entry, which is the one added by
// our own reverse proxy and cannot be spoofed by the client.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[len(parts)-1])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
