package upload

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/socampo/folio-core/internal/config"
)

// S3Store uploads objects to an S3-compatible bucket.
type S3Store struct {
	client       *s3.Client
	bucket       string
	region       string
	endpoint     string
	pathStyle    bool
	customDomain string
}

func NewS3Store(opts config.S3Options) (*S3Store, error) {
	bucket := strings.TrimSpace(opts.Bucket)
	region := strings.TrimSpace(opts.Region)
	accessKey := strings.TrimSpace(opts.AccessKeyID)
	secretKey := strings.TrimSpace(opts.SecretAccessKey)
	if bucket == "" || region == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		endpoint = strings.TrimSuffix(endpoint, "/")
	}

	// Custom endpoints (R2, MinIO) generally need path-style addressing.
	pathStyle := opts.PathStyleAccess
	if endpoint != "" && !pathStyle {
		pathStyle = true
	}

	sdkOpts := s3.Options{
		Region:       region,
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: pathStyle,
	}
	if endpoint != "" {
		sdkOpts.BaseEndpoint = aws.String(endpoint)
	}

	return &S3Store{
		client:       s3.New(sdkOpts),
		bucket:       bucket,
		region:       region,
		endpoint:     endpoint,
		pathStyle:    pathStyle,
		customDomain: strings.TrimRight(strings.TrimSpace(opts.CustomDomain), "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, payload []byte) (string, error) {
	key = normalizeKey(key)
	if key == "" {
		return "", fmt.Errorf("invalid object key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.publicURL(key), nil
}

func (s *S3Store) publicURL(key string) string {
	if s.customDomain != "" {
		return s.customDomain + "/" + key
	}
	if s.endpoint != "" {
		if s.pathStyle {
			return s.endpoint + "/" + s.bucket + "/" + key
		}
		host := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
		return "https://" + s.bucket + "." + host + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
