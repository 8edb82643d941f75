package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"time"

	"catalog-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// keyLayout sorts lexically in time order.
const keyLayout = "20060102T150405.000000000Z"

// Archive stores raw feed bodies in object storage so a cycle's input can be
// inspected later.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	retain int
	now    func() time.Time
}

// NewArchive creates an archive writing under prefix in bucket, keeping at most
// retain bodies per feed (0 keeps everything).
func NewArchive(client storage.Client, bucket, prefix string, retain int) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		prefix: prefix,
		retain: retain,
		now:    time.Now,
	}
}

// Store uploads body as <prefix>/<feed>/<timestamp>.json, prunes old bodies and
// returns the new key.
func (a *Archive) Store(ctx context.Context, feed string, body []byte) (string, error) {
	key := path.Join(a.prefix, feed, a.now().UTC().Format(keyLayout)+".json")

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if a.retain > 0 {
		if err := a.Prune(ctx, feed); err != nil {
			return key, err
		}
	}
	return key, nil
}

// Keys lists archived bodies of feed, oldest first.
func (a *Archive) Keys(ctx context.Context, feed string) ([]string, error) {
	var keys []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    path.Join(a.prefix, feed) + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archived %s bodies: %w", feed, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Prune removes the oldest bodies of feed beyond the retain limit.
func (a *Archive) Prune(ctx context.Context, feed string) error {
	keys, err := a.Keys(ctx, feed)
	if err != nil {
		return err
	}
	if len(keys) <= a.retain {
		return nil
	}
	stale := keys[:len(keys)-a.retain]

	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for _, k := range stale {
			select {
			case objectsCh <- minio.ObjectInfo{Key: k}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var errs []error
	for rerr := range a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("remove %s: %w", rerr.ObjectName, rerr.Err))
	}
	return errors.Join(errs...)
}

// EnsureBucket creates the archive bucket when it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context, region string) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}
