package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"hr-backoffice/internal/storage"
)

// Store keeps uploaded bytes in an S3 bucket. Same three-operation contract
// as the disk store, selected via STORAGE_DRIVER=s3.
type Store struct {
	client *awss3.Client
	bucket string
	prefix string
	region string
}

func New(ctx context.Context, region, bucket, prefix string) (storage.Provider, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Store{
		client: awss3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: normalizePrefix(prefix),
		region: region,
	}, nil
}

func (s *Store) Save(ctx context.Context, storedName string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// Uploads are bounded by the HTTP layer's size ceiling, so buffering
	// the body for a single PutObject is fine.
	var buf bytes.Buffer
	size, err := io.Copy(&buf, r)
	if err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}

	_, err = s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(storedName)),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		return 0, fmt.Errorf("put object: %w", err)
	}

	return size, nil
}

func (s *Store) Delete(ctx context.Context, storedName string) error {
	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(storedName)),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *Store) URL(storedName string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, s.objectKey(storedName))
}

// Open fetches the stored object, used by the OCR consumer.
func (s *Store) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(storedName)),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	return out.Body, nil
}

func (s *Store) objectKey(storedName string) string {
	if s.prefix == "" {
		return storedName
	}
	return path.Join(s.prefix, storedName)
}

func normalizePrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}
