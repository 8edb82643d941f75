// Package storage wraps the MinIO Go client behind a small Client interface.
//
// It is only used to archive raw feed bodies (see core/feed.Archive), so the
// interface carries just what that needs: bucket checks, uploads, listing and
// bulk removal. Both AWS S3 and self-hosted MinIO work.
//
// The interface exists so archive behaviour can be tested against
// core/storage/mocks without a running server.
//
//	client, err := storage.NewClient(cfg.Storage)
//	ok, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
