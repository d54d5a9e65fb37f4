package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"log/slog"

	cfg "github.com/Rakifeller/idea-approval/configs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Service stores character reference images in Cloudflare R2.
type R2Service struct {
	config cfg.Config
}

func NewR2Service(cfg cfg.Config) *R2Service {
	return &R2Service{config: cfg}
}

func (r *R2Service) client() *s3.Client {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.R2.AccessKey, r.config.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		log.Fatal(err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.R2.AccountID))
	})
}

func (r *R2Service) Upload(ctx context.Context, key string, file []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	}

	_, err := r.client().PutObject(ctx, input)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

// PublicURL maps a stored object key onto the bucket's public base URL.
func (r *R2Service) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", r.config.R2.PublicURL, key)
}
