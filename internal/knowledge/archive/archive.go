// Package archive stores raw page snapshots in object storage so indexed
// sources can be re-processed later.
package archive

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tripbuddy_backend/platform/config"
	"tripbuddy_backend/platform/logger"
)

// Archive stores page snapshots in a MinIO bucket.
type Archive struct {
	client *minio.Client
	bucket string
	log    *logger.Logger
}

// New creates the snapshot archive and ensures its bucket exists.
func New(ctx context.Context, cfg config.ArchiveConfig, log *logger.Logger) (*Archive, error) {
	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	bucket := cfg.GetMinioBucketPageSnapshots()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}

	return &Archive{client: client, bucket: bucket, log: log}, nil
}

// Store writes a page snapshot keyed by URL hash and capture date.
func (a *Archive) Store(ctx context.Context, sourceURL string, body []byte) error {
	sum := sha256.Sum256([]byte(sourceURL))
	object := fmt.Sprintf("%s/%s.html", time.Now().UTC().Format("2006-01-02"), hex.EncodeToString(sum[:16]))

	_, err := a.client.PutObject(ctx, a.bucket, object, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{
			ContentType:  "text/html",
			UserMetadata: map[string]string{"source-url": sourceURL},
		})
	if err != nil {
		return fmt.Errorf("put snapshot %s: %w", object, err)
	}

	a.log.Debug("page snapshot stored", "bucket", a.bucket, "object", object)
	return nil
}
