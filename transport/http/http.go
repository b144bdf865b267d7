package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"resto/config"
	_ "resto/docs" // swagger document
	"resto/infras/kafka"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/shared/constant"
	"resto/transport/http/middleware"
	"resto/transport/http/response"
	"resto/transport/http/router"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
)

type HTTP struct {
	Config        *config.Config
	Router        router.Router
	AppMiddleware middleware.AppMiddleware
	Otel          otel.Otel
	DB            *postgres.Connection
	Kafka         kafka.Client

	state   atomic.Int32
	mux     *chi.Mux
	once    sync.Once
	server  *http.Server
	stopped chan struct{}
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, otl otel.Otel, db *postgres.Connection, kafka kafka.Client) *HTTP {
	return &HTTP{
		Config:        cfg,
		Router:        r,
		AppMiddleware: appMiddleware,
		Otel:          otl,
		DB:            db,
		Kafka:         kafka,
		stopped:       make(chan struct{}),
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

// Serve listens on the configured port and blocks until the shutdown sequence has finished.
func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.stopped
}

// ServeHTTP serves a single request without owning the listener or the signal handling.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID, chiMiddleware.RealIP, chiMiddleware.Recoverer)

	if corsConfig := h.Config.App.CORS; corsConfig.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	if h.AppMiddleware != nil {
		h.mux.Use(h.AppMiddleware.Tracing, h.AppMiddleware.RateLimit())
	}

	h.mux.Get("/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.Router.SetupRoutes(h.mux)
}

// health reports 503 once shutdown has started so load balancers stop routing here.
func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.stopped)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.cleanup(context.Background())
		os.Exit(0)
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	h.cleanup(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// cleanup drains in-flight requests, then flushes traces and closes the outbound clients.
func (h *HTTP) cleanup(ctx context.Context) {
	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server did not drain in time")
		}
	}

	if h.Otel != nil {
		if err := h.Otel.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}

	if h.Kafka != nil {
		_ = h.Kafka.Close()
	}

	if h.DB != nil {
		h.DB.Close()
	}
}
