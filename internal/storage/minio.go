// Package storage publishes run results to an S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/specialistvlad/affinerun/internal/config"
	"github.com/specialistvlad/affinerun/internal/ctxlog"
)

// DownloadURLExpiry is the lifetime of presigned download links.
const DownloadURLExpiry = 10 * time.Minute

// MinIOStorage uploads files to one bucket of an S3-compatible server and
// hands out presigned links to them.
type MinIOStorage struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIOStorage connects to the configured endpoint and creates the
// bucket when it does not exist yet.
func NewMinIOStorage(ctx context.Context, cfg config.Publish) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket exists: %w", err)
	}

	if !exists {
		ctxlog.FromContext(ctx).Info("Creating bucket.", "bucket", cfg.Bucket)
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// Upload stores size bytes from r under objectKey.
func (m *MinIOStorage) Upload(ctx context.Context, objectKey string, r io.Reader, size int64) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectKey, r, size, minio.PutObjectOptions{
		ContentType: ContentType(objectKey),
	})
	if err != nil {
		return "", fmt.Errorf("uploading into minio: %w", err)
	}

	return objectKey, nil
}

// PublishFile uploads the file at filePath under the configured prefix and
// returns its object key.
func (m *MinIOStorage) PublishFile(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("reading file info for %s: %w", filePath, err)
	}

	return m.Upload(ctx, ObjectKey(m.prefix, filepath.Base(filePath)), f, info.Size())
}

// GetDownloadURL returns a presigned GET link valid for DownloadURLExpiry.
func (m *MinIOStorage) GetDownloadURL(ctx context.Context, objectKey string) (string, error) {
	presignedURL, err := m.client.PresignedGetObject(ctx, m.bucket, objectKey, DownloadURLExpiry, make(url.Values))
	if err != nil {
		return "", fmt.Errorf("generating minio download url: %w", err)
	}

	return presignedURL.String(), nil
}

// ObjectKey joins prefix and name with forward slashes. Leading and
// trailing slashes of prefix are dropped.
func ObjectKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// ContentType guesses the MIME type from the key's extension.
func ContentType(objectKey string) string {
	contentType := mime.TypeByExtension(path.Ext(objectKey))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
