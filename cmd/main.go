package main

import (
	"log"
	"os"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/auth"
	"bizops/backend/internal/commands"
	"bizops/backend/internal/pkg/config"
	"bizops/backend/internal/pkg/repository/postgresql"
	"bizops/backend/internal/router"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalln("config error:", err)
	}

	postgresDB := postgresql.NewDB(cfg.DBUrl(), os.Getenv("BIZOPS_SQL_VERBOSE") == "true")

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
	})

	r := router.NewRouter(
		web.NewApp(),
		postgresDB,
		redisDB,
		cfg.ServerPort,
		auth.New(cfg.JWTKey),
		cfg.BaseUrl,
		cfg.MediaBasePath,
	)

	if err := r.Init(); err != nil {
		log.Fatalln("server error:", err)
	}
}
