package media

import (
	"context"
	"strings"
	"time"

	"github.com/aiclub/website-backend/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/volatiletech/null/v8"
)

// Presigner is the subset of the S3 presign client used to sign downloads.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Resolver hands out time limited presigned GET URLs for objects in a bucket.
type S3Resolver struct {
	presigner Presigner
	bucket    string
	expires   time.Duration
	logger    zerolog.Logger
}

func NewS3Resolver(presigner Presigner, bucket string, expires time.Duration) *S3Resolver {
	if expires <= 0 {
		expires = time.Hour
	}
	return &S3Resolver{
		presigner: presigner,
		bucket:    bucket,
		expires:   expires,
		logger:    log.With().Str("component", "media.s3").Str("bucket", bucket).Logger(),
	}
}

// NewS3ResolverFromEnv loads AWS credentials from the default chain.
func NewS3ResolverFromEnv(ctx context.Context, bucket, region string, expires time.Duration) (*S3Resolver, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config for media bucket")
	}
	return NewS3Resolver(s3.NewPresignClient(s3.NewFromConfig(cfg)), bucket, expires), nil
}

func (r *S3Resolver) URL(ctx context.Context, path string) null.String {
	key := strings.TrimLeft(strings.TrimSpace(path), "/")
	if key == "" {
		return null.String{}
	}

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.expires))
	if err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to presign media object")
		return null.String{}
	}
	return null.StringFrom(req.URL)
}

// FromConfig picks the S3 resolver when MEDIA_S3_BUCKET is set and the local
// MEDIA_URL prefix otherwise.
func FromConfig(ctx context.Context, c map[string]string) (Resolver, error) {
	bucket := config.GetString(c, "MEDIA_S3_BUCKET", "")
	if bucket == "" {
		return NewLocalResolver(config.GetString(c, "MEDIA_URL", "/media/")), nil
	}
	return NewS3ResolverFromEnv(ctx,
		bucket,
		config.GetString(c, "MEDIA_S3_REGION", ""),
		config.GetSeconds(c, "MEDIA_S3_PRESIGN_SECONDS", time.Hour),
	)
}
