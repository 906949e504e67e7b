package middlewares

import (
	"fmt"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
)

// RateLimit limits requests per client IP. rate uses the limiter format,
// e.g. "300-M".
func RateLimit(rate string) (func(http.Handler) http.Handler, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	instance := limiter.New(memory.NewStore(), parsed)
	mw := stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			config.WithContext(r.Context()).Warn("Rate limit reached")
			config.Fail(w, http.StatusTooManyRequests, "too many requests")
		}),
		stdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			config.WithContext(r.Context()).WithError(err).Error("Rate limiter failed")
			config.Fail(w, http.StatusInternalServerError, "internal server error")
		}),
	)
	return mw.Handler, nil
}
