package middleware

import (
	"errors"
	"net"
	"net/http"
	"resto/shared"
	"resto/shared/cache"
	"resto/shared/constant"
	"resto/shared/timezone"
	"resto/transport/http/response"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit allows MaxRequests per client within fixed windows of WindowSeconds.
// Requests pass through when the cache is unavailable.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable || limiter.MaxRequests <= 0 || limiter.WindowSeconds <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			window := timezone.Now().Unix() / int64(limiter.WindowSeconds)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), strconv.FormatInt(window, 10))

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case err == nil:
				count++
			case errors.Is(err, cache.Nil):
				count = 1
			default:
				log.Warn().Err(err).Msg("rate limiter cache unavailable, allowing request")
				next.ServeHTTP(w, r)

				return
			}

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, limiter.WindowSeconds); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
