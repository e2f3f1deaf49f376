package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

const maxTrackedClients = 10_000

type limiters struct {
	mu      sync.Mutex
	cfg     config.RateLimit
	clients map[string]*rate.Limiter
}

func (l *limiters) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.clients[key]; ok {
		return lim
	}
	if len(l.clients) >= maxTrackedClients {
		// forget clients whose bucket has refilled
		for k, lim := range l.clients {
			if lim.Tokens() >= float64(l.cfg.Burst) {
				delete(l.clients, k)
			}
		}
	}
	lim := rate.NewLimiter(l.cfg.Limit, l.cfg.Burst)
	l.clients[key] = lim
	return lim
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit throttles each remote address with its own token bucket.
func RateLimit(log *slog.Logger, cfg *config.RateLimit) Middleware {
	l := &limiters{cfg: *cfg, clients: make(map[string]*rate.Limiter)}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			if !l.get(key).Allow() {
				log.Warn("rate limit exceeded", slog.String("client", key))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
