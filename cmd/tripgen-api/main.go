// README: Entry point; loads config, wires the AI pipeline and places services, starts HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tripgen/internal/ai"
	"tripgen/internal/config"
	httptransport "tripgen/internal/http"
	"tripgen/internal/infra"
	"tripgen/internal/maps"
	"tripgen/internal/modules/trip"
	"tripgen/internal/modules/usage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if !cfg.HasAIKey() {
		log.Fatal().Msg("no AI credentials; set GEMINI_API_KEY or OPENAI_API_KEY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dbPool *pgxpool.Pool
	if cfg.DB.DSN != "" {
		dbPool, err = infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres init failed")
		}
		defer dbPool.Close()
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = infra.NewRedis(cfg.Redis.Addr)
		defer redisClient.Close()
	}

	var usageStore *usage.Store
	if dbPool != nil {
		usageStore = usage.NewStore(dbPool)
	}
	usageSvc := usage.NewService(usageStore)

	creds := ai.Credentials{
		ai.CredentialGemini: cfg.AI.GeminiKey,
		ai.CredentialOpenAI: cfg.AI.OpenAIKey,
	}
	orchestrator := ai.NewOrchestrator(creds, usageSvc)

	var locator trip.Locator
	if cfg.Maps.APIKey != "" {
		photoSvc, err := maps.NewPhotoService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("maps client init failed")
		}
		locator = photoSvc
	}

	var cache *trip.Store
	if redisClient != nil {
		cache = trip.NewStore(redisClient, cfg.Cache.TTL)
	}

	planner := trip.NewPlanner(orchestrator)
	places := trip.NewService(orchestrator, cache, locator)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(planner, places, usageSvc),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httptransport.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
