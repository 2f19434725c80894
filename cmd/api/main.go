package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pixelforge/internal/adapter/repo"
	"pixelforge/internal/http/handlers"
	httpapi "pixelforge/internal/http/httpapi"
	"pixelforge/internal/imagegen"
	"pixelforge/internal/infra"
	"pixelforge/internal/infra/credentials"
	"pixelforge/internal/infra/geoip"
	"pixelforge/internal/service/generation"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if cfg.AutoMigrate {
		if err := infra.Migrate(cfg.DatabaseURL, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate schema")
		}
	}

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	sql := infra.NewSQLRunner(dbpool, logger)
	svc := generation.NewService(
		credentials.NewStore(sql),
		imagegen.NewOpenAIClient(imagegen.OpenAIOptions{
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			Model:        cfg.OpenAIImageModel,
		}),
		repo.NewImageRepository(sql),
		repo.NewUserRepository(sql),
		logger,
	)

	app := handlers.NewApp(cfg, logger, svc)
	countries, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	if countries != nil {
		defer countries.Close()
		app.Countries = countries.Country
	}

	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// In-flight generations may need the full write timeout to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPWriteTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
