package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-sync/core/loader"
	"catalog-sync/core/logger"
	"catalog-sync/core/metrics"
	"catalog-sync/core/middleware/rayid"
	"catalog-sync/core/scheduler"
	"catalog-sync/feature/catalog"
	catalogsync "catalog-sync/feature/catalog/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-sync/docs/swagger"
)

// @title Catalog Sync API
// @version 1.0
// @description Read API and sync control for the reconciled product catalog.
// @host localhost:5000
// @BasePath /

const shutdownTimeout = 30 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog sync server",
	Long:  `Starts the HTTP server and the periodic sync scheduler.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Config, logger, database and schema
		rt, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer rt.close()
		zap.ReplaceGlobals(rt.logger)
		logg := rt.logger

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 2. Sync orchestrator
		syncer, err := rt.syncer(ctx)
		if err != nil {
			logg.Fatal("Failed to create syncer", zap.Error(err))
		}

		catalogFeature := catalog.NewFeature(rt.db, logg, rt.cfg.Server.CacheTTL())
		syncer.OnCommit(func(context.Context, catalogsync.PassReport) {
			catalogFeature.Service().Invalidate()
		})

		// 3. Fiber app
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(metrics.Middleware())
		app.Get("/metrics", metrics.Handler())
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Features
		mgr := loader.NewManager(logg)
		mgr.Register(catalogFeature)
		mgr.Register(catalogsync.NewFeature(syncer, ctx, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Scheduler
		runner := scheduler.New(ctx, logg)
		if rt.cfg.Sync.Enabled {
			if _, err := runner.Every(rt.cfg.Sync.Interval(), syncer.Tick); err != nil {
				logg.Fatal("Failed to schedule sync", zap.Error(err))
			}
			runner.Start()
			logg.Info("Sync scheduled", zap.Duration("interval", rt.cfg.Sync.Interval()))
		}
		if rt.cfg.Sync.RunOnStart {
			go syncer.Tick(ctx)
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		runner.Stop()
		_ = app.Shutdown()

		// The store closes on return; let the cycle in flight unwind first.
		drainCtx, drainCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer drainCancel()
		if err := syncer.Close(drainCtx); err != nil {
			logg.Warn("Sync cycle still running at shutdown", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
