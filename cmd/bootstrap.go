package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/feed"
	"catalog-sync/core/logger"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/reconcile"
	catalogsync "catalog-sync/feature/catalog/sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services is the wiring shared by every command that touches the store.
type services struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func bootstrap() (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := catalog.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	rt := &services{cfg: cfg, logger: logg, db: db}
	rt.checkSchema()
	return rt, nil
}

// checkSchema only warns; a drifted table surfaces later as a rolled back pass.
func (rt *services) checkSchema() {
	report, err := catalog.VerifySchema(rt.db)
	if err != nil {
		rt.logger.Warn("Schema verification failed", zap.Error(err))
		return
	}
	if !report.Matched {
		rt.logger.Warn("Catalog schema drift detected", zap.Strings("errors", report.Errors))
	}
}

func (rt *services) close() {
	if err := database.Close(rt.db); err != nil {
		rt.logger.Warn("Failed to close database", zap.Error(err))
	}
	_ = rt.logger.Sync()
}

// feedClient builds the feed client, attaching the object storage archive when enabled.
func (rt *services) feedClient(ctx context.Context) (*feed.Client, error) {
	if !rt.cfg.Feed.Archive {
		return feed.NewClient(rt.cfg.Feed, rt.logger), nil
	}

	store, err := storage.NewClient(rt.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	archive := feed.NewArchive(store, rt.cfg.Storage.Bucket, rt.cfg.Feed.ArchivePrefix, rt.cfg.Feed.ArchiveRetain)
	if err := archive.EnsureBucket(ctx, rt.cfg.Storage.Region); err != nil {
		return nil, fmt.Errorf("failed to prepare archive bucket: %w", err)
	}
	rt.logger.Info("Feed archive enabled", zap.String("bucket", rt.cfg.Storage.Bucket))

	return feed.NewClient(rt.cfg.Feed, rt.logger, feed.WithArchive(archive)), nil
}

// syncer wires both reconcilers, primary first.
func (rt *services) syncer(ctx context.Context) (*catalogsync.Syncer, error) {
	client, err := rt.feedClient(ctx)
	if err != nil {
		return nil, err
	}

	return catalogsync.NewSyncer(rt.logger,
		reconcile.NewPrimary(rt.db, client, rt.cfg.Feed.PrimaryURL, rt.logger),
		reconcile.NewSecondary(rt.db, client, rt.cfg.Feed.SecondaryURL, rt.logger),
	), nil
}
