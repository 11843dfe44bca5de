// @title Trackit API
// @description API for weekly habit-tracking app "Trackit"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/trackit/internal/api"
	"github.com/limbo/trackit/internal/repository"
	"github.com/limbo/trackit/internal/service"
	"github.com/limbo/trackit/pkg/cleanup"
	"github.com/limbo/trackit/pkg/config"
	jwtservice "github.com/limbo/trackit/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool, err := pgxpool.New(context.Background(), dbCfg.ConnString())
	if err != nil {
		log.Fatal("creating db pool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	defer cleanup.CleanUp()

	// Idempotent bootstrap: existing tables and indexes are a no-op
	if err := repository.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatal("schema bootstrap error: " + err.Error())
	}

	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	completionsRepo := repository.NewCompletionsRepoWithConn(pool)
	serv := api.New(&api.ServicesList{
		HabitsService:      service.NewHabitsService(habitsRepo),
		CompletionsService: service.NewCompletionsService(completionsRepo),
		BoardService:       service.NewBoardService(habitsRepo, completionsRepo),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
		DB:                 pool,
		DevTokenIssuer:     cfg.GetBool("DEV_TOKEN_ISSUER"),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
