package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/api"
	"github.com/KeisukeTTTT/estate-management/internal/cache"
	"github.com/KeisukeTTTT/estate-management/internal/config"
	"github.com/KeisukeTTTT/estate-management/internal/db"
	"github.com/KeisukeTTTT/estate-management/internal/logging"
	"github.com/KeisukeTTTT/estate-management/internal/pipeline"
	"github.com/KeisukeTTTT/estate-management/internal/seed"
	"github.com/KeisukeTTTT/estate-management/internal/services"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "estate",
		Short:         "Rental property management dashboard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		seedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the connections shared by every subcommand.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *db.Store
	cache  cache.IListingCache
	close  func()
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.PrettyLogs)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	mongoClient, mongoDb, err := db.ConnectDB(cfg.MongoURI, cfg.MongoDbName, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureIndexes(ctx, mongoDb); err != nil {
		_ = db.DisconnectDB(mongoClient, logger)
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	redisClient, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
	if err != nil {
		_ = db.DisconnectDB(mongoClient, logger)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  db.NewStore(mongoDb),
		cache:  cache.NewListingCache(redisClient, cfg.GetCacheTTL),
		close: func() {
			if err := cache.DisconnectRedis(redisClient, logger); err != nil {
				logger.Error("error disconnecting from Redis", zap.Error(err))
			}
			if err := db.DisconnectDB(mongoClient, logger); err != nil {
				logger.Error("error disconnecting from MongoDB", zap.Error(err))
			}
			_ = logger.Sync()
		},
	}, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			runner := pipeline.NewRunner(a.store, a.store, a.cache, a.logger, a.cfg.StorageTimeout)
			svc := api.Services{
				Properties:   services.NewPropertyService(a.store, runner, a.cache, a.logger),
				Contractors:  services.NewContractorService(a.store, runner, a.cache, a.logger),
				Contracts:    services.NewContractService(a.store, runner, a.cache, a.logger),
				Transactions: services.NewTransactionService(a.store, runner, a.cache, a.logger),
				Inquiries:    services.NewInquiryService(a.store, runner, a.cache, a.logger),
			}

			srv := &http.Server{
				Addr:    ":" + a.cfg.ApiPort,
				Handler: api.SetupRouter(ctx, a.cfg, svc, a.logger),
			}

			serveErr := make(chan error, 1)
			go func() {
				a.logger.Info("API listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case <-ctx.Done():
				a.logger.Info("shutdown signal received, shutting down gracefully")
			case err := <-serveErr:
				if err != nil {
					return fmt.Errorf("API server error: %w", err)
				}
			}

			ctxShutdown, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctxShutdown); err != nil {
				a.logger.Error("API server shutdown error", zap.Error(err))
			}
			a.logger.Info("API server stopped")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load properties and rooms from a YAML fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")

			fixture, err := seed.ParseFile(path)
			if err != nil {
				return err
			}
			if err := fixture.Validate(); err != nil {
				return fmt.Errorf("invalid fixture %s: %w", path, err)
			}

			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			sum, err := seed.NewSeeder(a.store, a.cache, a.logger).Run(cmd.Context(), fixture)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d properties and %d rooms.\n", sum.Properties, sum.Rooms)
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "fixtures.yaml", "Path to the YAML fixture")

	return cmd
}
