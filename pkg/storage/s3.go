// Package storage removes uploaded attachment files from S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"project-portal/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

type ObjectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Storage struct {
	client ObjectDeleter
	bucket string
	log    *zap.Logger
}

func NewS3Storage(ctx context.Context, cfg utils.StorageConfig, log *zap.Logger) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StorageWithClient(client, cfg.Bucket, log), nil
}

func NewS3StorageWithClient(client ObjectDeleter, bucket string, log *zap.Logger) *S3Storage {
	return &S3Storage{
		client: client,
		bucket: bucket,
		log:    log.With(zap.String("component", "s3")),
	}
}

// Delete removes the object referenced by fileURL, which may be a full
// object URL or a bare key.
func (s *S3Storage) Delete(ctx context.Context, fileURL string) error {
	key, err := ObjectKey(fileURL, s.bucket)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.log.Error("Failed to delete object", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	s.log.Info("Object deleted", zap.String("key", key))
	return nil
}

// ObjectKey extracts the object key from a virtual-hosted or path-style URL.
func ObjectKey(fileURL, bucket string) (string, error) {
	raw := strings.TrimSpace(fileURL)
	if raw == "" {
		return "", errors.New("empty file url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse file url: %w", err)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host != "" && !strings.HasPrefix(u.Host, bucket+".") {
		key = strings.TrimPrefix(key, bucket+"/")
	}
	if key == "" {
		return "", fmt.Errorf("no object key in %q", fileURL)
	}

	return key, nil
}
