// Command token mints an access token for calling the protected table endpoints.
package main

import (
	"flag"
	"fmt"
	"resto/config"
	"resto/infras/jwt"
	"resto/shared/constant"
	"resto/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	userID := flag.String("user", "", "user id carried in the token")
	role := flag.String("role", constant.RoleStaff, "role carried in the token")
	flag.Parse()

	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if *userID == "" {
		log.Fatal().Msg("-user is required")
	}

	token, err := jwt.New(cfg).GenerateAccessToken(*userID, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate access token")
	}

	fmt.Println(token) //nolint:forbidigo
}
