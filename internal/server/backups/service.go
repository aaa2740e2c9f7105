// Package backups hands out presigned S3 URLs for uploading and fetching
// site backup archives. The server never proxies archive bytes itself.
package backups

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/wpsaas/wpcloud/internal/server/config"
)

const presignValidity = 15 * time.Minute

// Seams for tests, the real AWS SDK entry points otherwise.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = s3.NewPresignClient
)

type Service struct {
	config *sc.Config
}

func NewService(config *sc.Config) *Service {
	return &Service{config: config}
}

// StorageKey builds a date-sharded object key for a new backup archive of
// the given domain.
func StorageKey(domain string) string {
	d := time.Now()
	return fmt.Sprintf("backups/%s/%d/%d/%d/%v", domain, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *Service) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutUrl returns a fresh object key and a URL the caller can
// PUT a backup archive to within the validity window.
func (s *Service) GetPresignedPutUrl(ctx context.Context, domain string) (string, string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := StorageKey(domain)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetPresignedGetUrl returns a URL the caller can download the backup at
// key from within the validity window.
func (s *Service) GetPresignedGetUrl(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
