package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"roomcal/shared"
	"roomcal/shared/cache"
	"roomcal/shared/constant"
	"roomcal/transport/http/response"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"

	// Reads are served from the cached booking set, writes reach the reservation backend.
	bucketRead  = "read"
	bucketWrite = "write"
)

// RateLimit counts requests per client and bucket in a fixed window. Writes get half the
// read budget. When the cache is unavailable requests are let through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			bucket, limit := a.bucket(r)
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			count, ok := a.hit(r.Context(), shared.BuildCacheKey(cacheKeyRateLimit, bucket, a.getClientIP(r)), windowSecs)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limit-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if count > limit {
				log.Warn().Str("bucket", bucket).Str("client", a.getClientIP(r)).Msg("rate limit exceeded")

				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) bucket(r *http.Request) (string, int) {
	limit := a.config.App.RateLimiter.MaxRequests

	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return bucketRead, limit
	default:
		return bucketWrite, max(1, limit/2)
	}
}

// hit increments the counter at key and reports the new count. ok is false when the
// counter could not be read or stored.
func (a *appMiddleware) hit(ctx context.Context, key string, windowSecs int) (count int, ok bool) {
	err := a.cache.Get(ctx, key, &count)

	switch {
	case errors.Is(err, cache.Nil):
		count = 0
	case err != nil:
		log.Warn().Err(err).Str("key", key).Msg("rate limiter cache unavailable")

		return 0, false
	}

	count++

	if err = a.cache.Save(ctx, key, count, windowSecs); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("rate limiter cache unavailable")

		return 0, false
	}

	return count, true
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = "unknown"
	}

	return ua
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address without its port.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
