package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/toy-soldier/starzz/internal/cache"
	"github.com/toy-soldier/starzz/internal/config"
	"github.com/toy-soldier/starzz/internal/database"
	"github.com/toy-soldier/starzz/internal/handler"
	"github.com/toy-soldier/starzz/internal/queue"
	"github.com/toy-soldier/starzz/internal/repository"
	"github.com/toy-soldier/starzz/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable, list cache disabled")
	}
	cc := cache.New(rdb, cfg.ListCacheTTL)

	if cfg.AMQPURL == "" {
		log.Print("RABBITMQ_URL unset, catalog events disabled")
	}
	events := queue.NewPublisher(cfg.AMQPURL)

	userRepo := repository.NewUserRepo(db)

	e := echo.New()
	router.Register(e, cfg.JWTSecret,
		handler.NewAuthHandler(cfg, userRepo),
		handler.NewUserHandler(cfg, userRepo, cc, events),
		handler.NewGalaxyHandler(repository.NewGalaxyRepo(db), cc, events),
		handler.NewConstellationHandler(repository.NewConstellationRepo(db), cc, events),
		handler.NewStarHandler(repository.NewStarRepo(db), cc, events),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
