// Package storage 提供了与对象存储服务（GCS 或 MinIO）交互的功能。
package storage

import (
	"context"
	"fmt"

	"bicara-go/internal/config"
)

// 上传对象统一携带的缓存指令，生成的音频/图片文件名唯一，内容不可变。
const cacheControl = "public, max-age=31536000"

// ObjectStore 是对象存储后端的窄接口。
// PublicURL 的结果是确定的：仅由基础 URL 和对象名拼接而成。
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) error
	Remove(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

// New 根据配置选择对象存储后端。
func New(cfg config.StorageConfig, gcpCfg config.GCPConfig) (ObjectStore, error) {
	switch cfg.Backend {
	case "gcs", "":
		return newGCSStore(cfg, gcpCfg)
	case "minio":
		return newMinIOStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
