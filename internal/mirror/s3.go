package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Client uploads synced UCD files to an S3 bucket.
type Client struct {
	uploader uploader
}

func NewClient(ctx context.Context, profile string) (*Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRetryMode("adaptive"),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %v", err)
	}
	return &Client{uploader: manager.NewUploader(s3.NewFromConfig(cfg))}, nil
}

// MirrorDirectory uploads every regular file in dir under prefix, one object
// per file. Uploads run sequentially and the first failure aborts the rest.
func (c *Client) MirrorDirectory(ctx context.Context, dir, bucket, prefix string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %v", err)
	}
	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := c.uploadFile(ctx, filepath.Join(dir, entry.Name()), bucket, prefix+entry.Name()); err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}
		uploaded++
	}
	if uploaded == 0 {
		return fmt.Errorf("no files found in %s", dir)
	}
	log.Info().Str("op", "mirror/s3").Msgf("Uploaded %d files to s3://%s/%s", uploaded, bucket, prefix)
	return nil
}

func (c *Client) uploadFile(ctx context.Context, path, bucket, key string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening file: %v", err)
	}
	defer file.Close()
	log.Debug().Str("op", "mirror/s3").Msgf("Uploading %s to s3://%s/%s", path, bucket, key)
	_, err = c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("error uploading object: %v", err)
	}
	return nil
}
