package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"

	"petcare-api/internal/ports/objects"
)

type Config struct {
	Region string
	Bucket string
	Prefix string

	// PublicBaseURL es opcional (CDN, endpoint compatible). Si está vacío se
	// usa la URL virtual-hosted de S3.
	PublicBaseURL string
}

// Store sube objetos a S3 con ACL public-read.
type Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL(cfg.Bucket, awsCfg.Region)
	}

	return &Store{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		prefix:  normalizePrefix(cfg.Prefix),
		baseURL: baseURL,
	}, nil
}

func (s *Store) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	objectKey := applyPrefix(s.prefix, key)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
		Body:   r,
		ACL:    s3types.ObjectCannedACLPublicRead,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errors.Wrapf(err, "s3 put object bucket=%s key=%s", s.bucket, objectKey)
	}
	return objectURL(s.baseURL, objectKey), nil
}

func defaultBaseURL(bucket, region string) string {
	if region == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
}

func objectURL(baseURL, objectKey string) string {
	return baseURL + "/" + (&url.URL{Path: objectKey}).EscapedPath()
}

func normalizePrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func applyPrefix(prefix, key string) string {
	cleanPrefix := strings.Trim(prefix, "/")
	cleanKey := strings.TrimLeft(key, "/")
	if cleanPrefix == "" {
		return cleanKey
	}
	if cleanKey == "" {
		return cleanPrefix
	}
	return cleanPrefix + "/" + cleanKey
}

var _ objects.Store = (*Store)(nil)
