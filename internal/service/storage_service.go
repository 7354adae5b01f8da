package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
	"github.com/tuanvu/snapgrade/config"
)

// StorageService stores uploaded work images and hands back durable URLs.
type StorageService interface {
	Upload(ctx context.Context, data []byte, contentType, folder, filename string) (string, error)
	GetURL(objectName string) string
}

type minioStorageService struct {
	client *minio.Client
	cfg    *config.Config
}

func NewStorageService(cfg *config.Config) (StorageService, error) {
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}
	return &minioStorageService{client: client, cfg: cfg}, nil
}

func (s *minioStorageService) ensureBucket(ctx context.Context) error {
	bucket := s.cfg.Storage.Bucket
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		log.Info().Str("bucket", bucket).Msg("Creating storage bucket")
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}
	return nil
}

func (s *minioStorageService) Upload(ctx context.Context, data []byte, contentType, folder, filename string) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s/%s-%s", folder, uuid.NewString(), filename)

	_, err := s.client.PutObject(ctx, s.cfg.Storage.Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}

	url := s.GetURL(objectName)
	log.Info().Str("object", objectName).Str("url", url).Msg("File uploaded")
	return url, nil
}

func (s *minioStorageService) GetURL(objectName string) string {
	base := s.cfg.Storage.PublicURL
	if base == "" {
		scheme := "http"
		if s.cfg.Storage.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, s.cfg.Storage.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", base, s.cfg.Storage.Bucket, objectName)
}
