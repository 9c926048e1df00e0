package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"bicara-go/internal/apperr"
	"bicara-go/internal/config"
)

// minioStore 是 ObjectStore 的 MinIO 实现，用于自建部署环境。
type minioStore struct {
	client        *minio.Client
	endpoint      string
	useSSL        bool
	bucketName    string
	publicBaseURL string
}

// newMinIOStore 初始化 MinIO 客户端并确保指定的存储桶存在。
func newMinIOStore(cfg config.StorageConfig) (ObjectStore, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKeyID, cfg.MinIO.SecretAccessKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 MinIO 客户端失败: %w", err)
	}

	// 检查存储桶是否存在，不存在则创建
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("检查 MinIO 存储桶失败: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("创建 MinIO 存储桶失败: %w", err)
		}
	}

	return &minioStore{
		client:        client,
		endpoint:      cfg.MinIO.Endpoint,
		useSSL:        cfg.MinIO.UseSSL,
		bucketName:    cfg.BucketName,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload 将字节写入存储桶中的指定对象。
func (s *minioStore) Upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to put object %q to MinIO: %v", apperr.ErrUpstream, objectName, err)
	}
	return nil
}

// Remove 删除存储桶中的指定对象。
func (s *minioStore) Remove(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: failed to remove object %q from MinIO: %v", apperr.ErrUpstream, objectName, err)
	}
	return nil
}

// PublicURL 返回对象的公开访问 URL。
// 配置了 public_base_url 时优先使用，否则按 endpoint 拼接。
func (s *minioStore) PublicURL(objectName string) string {
	objectName = strings.TrimLeft(objectName, "/")
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, objectName)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucketName, objectName)
}
