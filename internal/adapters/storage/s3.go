package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"concertify/internal/domain"
)

// S3Config holds configuration for the S3 object store.
type S3Config struct {
	Provider        string
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewObjectStore creates an object store from config. Provider "s3" uses AWS S3;
// "noop" or unknown uses a no-op store that only logs.
func NewObjectStore(config S3Config) (domain.ObjectStore, error) {
	switch config.Provider {
	case "s3":
		if config.Bucket == "" {
			return nil, fmt.Errorf("s3 object store requires a bucket name")
		}
		awsCfg := aws.Config{
			Region: config.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					config.AccessKeyID,
					config.SecretAccessKey,
					"",
				),
			),
		}
		return &s3Store{
			client: s3.NewFromConfig(awsCfg),
			bucket: config.Bucket,
			region: config.Region,
		}, nil
	case "noop":
		return &noopStore{bucket: config.Bucket, region: config.Region}, nil
	default:
		log.Printf("[STORAGE] Unknown storage provider %q, using noop", config.Provider)
		return &noopStore{bucket: config.Bucket, region: config.Region}, nil
	}
}

type s3Store struct {
	client *s3.Client
	bucket string
	region string
}

func (s *s3Store) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload object to S3: %w", err)
	}
	return nil
}

func (s *s3Store) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

type noopStore struct {
	bucket string
	region string
}

func (n *noopStore) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	log.Printf("[STORAGE] Object would be uploaded (noop) key=%s bytes=%d", key, len(body))
	return nil
}

func (n *noopStore) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", n.bucket, n.region, key)
}
