package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/vidqa/internal/adapter/http/ratelimit"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
)

type AuthService interface {
	Enabled() bool
	ValidateToken(token string) error
}

// AuthMiddleware requires a valid bearer token when auth is enabled.
// Clients that keep failing are locked out by limiter.
func AuthMiddleware(authSvc AuthService, limiter *ratelimit.AuthLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authSvc.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			client := clientID(r)
			if allowed, remaining := limiter.Allow(client); !allowed {
				tooManyAttempts(w, remaining)
				return
			}

			token, ok := bearerToken(r)
			if !ok || authSvc.ValidateToken(token) != nil {
				if blocked := limiter.Fail(client); blocked > 0 {
					logger.Warn.Printf("blocking %s for %s after repeated auth failures", client, blocked)
					tooManyAttempts(w, blocked)
					return
				}
				w.Header().Set("WWW-Authenticate", `Bearer realm="vidqa"`)
				writeError(w, http.StatusUnauthorized, "missing or invalid API token")
				return
			}

			limiter.Reset(client)
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// clientID keys lockouts by remote host. Behind a proxy the RealIP
// middleware has already rewritten RemoteAddr.
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func tooManyAttempts(w http.ResponseWriter, retryAfter time.Duration) {
	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	writeError(w, http.StatusTooManyRequests, "too many failed authentication attempts")
}
