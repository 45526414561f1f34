package reader

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	db "streamwc/debug"
)

const S3PREFIX = "s3://"

// ParseS3 splits "s3://bucket/key" into bucket and key.
func ParseS3(name string) (string, string, bool) {
	if !strings.HasPrefix(name, S3PREFIX) {
		return "", "", false
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(name, S3PREFIX), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

func openS3(ctx context.Context, bucket, key, profile string) (io.ReadCloser, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	clnt := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	db.DPrintf(db.S3CLNT, "GetObject %v %v", bucket, key)
	result, err := clnt.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}
