package middleware

import (
	"fmt"
	"net/http"
	"resto/config"
	"resto/infras/otel"
	"resto/shared/cache"
	"resto/shared/constant"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens a span per request and records the matched route and status code.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)
		requestID := chiMiddleware.GetReqID(request.Context())

		if requestID != "" {
			writer.Header().Set(constant.RequestHeaderRequestID, requestID)
		}

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": a.getUA(request),
			"http.host":       request.Host,
			"http.source":     a.getClientIP(request),
			"http.request_id": requestID,
		})

		wrapped := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(wrapped, request.WithContext(ctx))

		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}

		attributes := map[string]any{
			"http.status_code": status,
		}

		if rctx := chi.RouteContext(request.Context()); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if status >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("%s %s responded %d", request.Method, request.URL.Path, status))
		}
	})
}
