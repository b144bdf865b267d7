package http

import (
	"net/http"
	"net/http/httptest"
	"resto/config"
	jwtMocks "resto/infras/jwt/mocks"
	otelMocks "resto/infras/otel/mocks"
	serviceMocks "resto/internal/domains/table/service/mocks"
	"resto/internal/handlers/table"
	"resto/permissions"
	"resto/shared/constant"
	"resto/transport/http/middleware"
	"resto/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, cfg *config.Config) (*HTTP, *serviceMocks.MockTable) {
	t.Helper()

	ctrl := gomock.NewController(t)
	otl := otelMocks.NewOtel()
	service := serviceMocks.NewMockTable(ctrl)

	auth := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), otl, permissions.Get(), cfg)
	r := router.New(router.DomainHandlers{Table: table.New(service, otl, auth)})

	return New(cfg, r, middleware.NewAppMiddleware(otl, cfg, nil), otl, nil, nil), service
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t, &config.Config{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"OK"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(constant.RequestHeaderRequestID))
}

func TestHealth_GracePeriod(t *testing.T) {
	h, _ := newTestServer(t, &config.Config{})
	h.setup()
	h.setState(ServerStateInGracePeriod)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), constant.ResponseErrorPrepareShutdown)
}

func TestServeHTTP_RoutesToTableHandler(t *testing.T) {
	h, service := newTestServer(t, &config.Config{})
	service.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(5, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/busy-tables-count", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"busyTablesCount":5}`, w.Body.String())
}

func TestServeHTTP_UnknownRoute(t *testing.T) {
	h, _ := newTestServer(t, &config.Config{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://floor.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	h, _ := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://floor.example.com")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://floor.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
