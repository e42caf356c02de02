package middleware

import (
	"cinema/shared"
	"cinema/shared/cache"
	"cinema/shared/constant"
	"cinema/transport/http/response"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"

	limitClassRead  = "read"
	limitClassWrite = "write"
)

// RateLimit counts requests per client in fixed windows. Reads and writes are counted apart so
// clients polling seat maps keep their budget for reserving.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, limitClass(r), clientIP(r), userAgent(r))

			count, ok := a.hit(r, cacheKey, limiter.WindowSeconds)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

// hit increments the counter under cacheKey. ok is false when the cache is unavailable, in which
// case the request is not limited.
func (a *appMiddleware) hit(r *http.Request, cacheKey string, windowSecs int) (count int, ok bool) {
	err := a.cache.Get(r.Context(), cacheKey, &count)

	switch {
	case errors.Is(err, cache.Nil):
		count = 1
	case err != nil:
		log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter cache unavailable")

		return 0, false
	default:
		count++
	}

	// over the limit, the window keeps its original expiry
	if count > a.config.App.RateLimiter.MaxRequests {
		return count, true
	}

	if err := a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to save rate limiter counter")

		return 0, false
	}

	return count, true
}

func limitClass(r *http.Request) string {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return limitClassRead
	default:
		return limitClassWrite
	}
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != constant.Empty {
		return ua
	}

	return "unknown"
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the remote address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
