package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"seekreviews/internal/config"
	"seekreviews/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// Init 初始化 MinIO 客户端并确保封面 Bucket 存在
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.CoverBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.CoverBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.CoverBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.CoverBucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.CoverBucket))
	}

	// 封面 Bucket 需要公开读，封面 URL 直接存入数据库供前端使用
	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.CoverBucket)
	if err := client.SetBucketPolicy(ctx, cfg.CoverBucket, policy); err != nil {
		return fmt.Errorf("failed to set public policy for %s: %w", cfg.CoverBucket, err)
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("cover_bucket", cfg.CoverBucket),
	)

	return nil
}

// Get 获取 MinIO 客户端实例
func Get() *minio.Client {
	return client
}

// UploadCover 上传封面图片，返回公开访问 URL
func UploadCover(ctx context.Context, objectName string, reader io.Reader, fileSize int64, contentType string) (string, error) {
	cfg := config.GetMinIO()

	_, err := client.PutObject(ctx, cfg.CoverBucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cover to minio: %w", err)
	}

	return PublicURL(cfg, objectName), nil
}

// PublicURL 生成封面对象的公开访问 URL
func PublicURL(cfg *config.MinIOConfig, objectName string) string {
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, cfg.CoverBucket, objectName)
}
