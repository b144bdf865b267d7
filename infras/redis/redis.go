package redis

import (
	"context"
	"net"
	"resto/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
	pingTimeout = 5 * time.Second
)

func options(cfg *config.Config) *goRedis.Options {
	primary := cfg.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:         net.JoinHostPort(primary.Host, primary.Port),
		Password:     primary.Password,
		DB:           primary.DB,
		ClientName:   cfg.App.Name,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	}
}

// New connects to the primary Redis. Without a configured host the cache is optional
// and the client is built without a startup ping.
func New(cfg *config.Config) *goRedis.Client {
	opts := options(cfg)
	client := goRedis.NewClient(opts)

	if cfg.Cache.Redis.Primary.Host == "" {
		log.Warn().Msg("Redis host not configured, cache calls will fail and fall back to the database")

		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", opts.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().Int("db", opts.DB).Str("addr", opts.Addr).Msg("Connected to Redis")

	return client
}
