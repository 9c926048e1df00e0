package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"bicara-go/internal/apperr"
	"bicara-go/internal/config"
)

// gcsStore 是 ObjectStore 的 Google Cloud Storage 实现。
type gcsStore struct {
	client        *gcs.Client
	bucketName    string
	publicBaseURL string
}

// newGCSStore 初始化 GCS 客户端。
// 凭证优先取配置中的文件路径，否则由 SDK 按 GOOGLE_APPLICATION_CREDENTIALS 解析。
func newGCSStore(cfg config.StorageConfig, gcpCfg config.GCPConfig) (ObjectStore, error) {
	opts := []option.ClientOption{option.WithScopes(gcs.ScopeReadWrite)}
	if creds := strings.TrimSpace(gcpCfg.CredentialsFile); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	client, err := gcs.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &gcsStore{
		client:        client,
		bucketName:    cfg.BucketName,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload 将字节写入存储桶中的指定对象。
func (s *gcsStore) Upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = cacheControl
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("%w: failed to write object %q to GCS: %v", apperr.ErrUpstream, objectName, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: failed to close GCS writer for %q: %v", apperr.ErrUpstream, objectName, err)
	}
	return nil
}

// Remove 删除存储桶中的指定对象。
func (s *gcsStore) Remove(ctx context.Context, objectName string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.client.Bucket(s.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("%w: failed to delete GCS object %q: %v", apperr.ErrUpstream, objectName, err)
	}
	return nil
}

// PublicURL 返回对象的公开访问 URL。
// 配置了 public_base_url（如 CDN 域名）时优先使用。
func (s *gcsStore) PublicURL(objectName string) string {
	objectName = strings.TrimLeft(objectName, "/")
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, objectName)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName)
}
