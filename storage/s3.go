package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Bucket         string
	Region         string
	PublicBaseURL  string
	PresignMinutes int
}

// S3 resolves keys in an S3 bucket, either as public object URLs or, when
// PresignMinutes > 0, as time limited presigned GET URLs.
type S3 struct {
	cfg       S3Config
	presigner *s3.PresignClient
}

func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = awsCfg.Region
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3{
		cfg:       cfg,
		presigner: s3.NewPresignClient(client),
	}, nil
}

func (b *S3) URL(ctx context.Context, key string) (string, error) {
	if b.cfg.PresignMinutes > 0 {
		req, err := b.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(b.cfg.Bucket),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(time.Duration(b.cfg.PresignMinutes)*time.Minute))
		if err != nil {
			return "", fmt.Errorf("presign %s: %w", key, err)
		}
		return req.URL, nil
	}
	return joinURL(b.publicBase(), key), nil
}

func (b *S3) publicBase() string {
	if b.cfg.PublicBaseURL != "" {
		return b.cfg.PublicBaseURL
	}
	if b.cfg.Region == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com", b.cfg.Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", b.cfg.Bucket, b.cfg.Region)
}
