//go:build wireinject
// +build wireinject

package di

import (
	"resto/config"
	"resto/infras/jwt"
	"resto/infras/kafka"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/infras/redis"
	"resto/permissions"
	"resto/shared/cache"
	"resto/transport/http"
	"resto/transport/http/middleware"
	"resto/transport/http/router"

	tableRepository "resto/internal/domains/table/repository"
	tableService "resto/internal/domains/table/service"
	tableHandler "resto/internal/handlers/table"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var domains = wire.NewSet(
	tableDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	tableHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
