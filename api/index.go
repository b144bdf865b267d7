package handler

import (
	"net/http"
	"os"
	"resto/config"
	"resto/di"
	"resto/shared/logger"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	service     http.Handler
	serviceOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serviceOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)
		log.Logger = logger.Output(cfg, os.Stdout)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
