package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // for S3-compatible stores; empty means AWS
	KeyPrefix string // e.g. "receipts"
	URLTTL    time.Duration
}

type S3Store struct {
	cfg     S3Config
	client  *s3.Client
	presign *s3.PresignClient
	logger  *slog.Logger
}

func NewS3Store(ctx context.Context, cfg S3Config, logger *slog.Logger) (*S3Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.URLTTL <= 0 {
		cfg.URLTTL = DefaultURLTTL
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		cfg:     cfg,
		client:  client,
		presign: s3.NewPresignClient(client),
		logger:  logger,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, projectID string, filename string, content io.Reader) (string, error) {
	key := objectKey(s.cfg.KeyPrefix, projectID, filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   content,
		Metadata: map[string]string{
			"project_id":        projectID,
			"original_filename": filename,
		},
	})
	if err != nil {
		s.logger.Error("storage.upload_failed", "bucket", s.cfg.Bucket, "key", key, "error", err)
		return "", fmt.Errorf("upload object: %w", err)
	}
	s.logger.Info("storage.uploaded", "bucket", s.cfg.Bucket, "key", key)
	return key, nil
}

func (s *S3Store) GetURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.URLTTL))
	if err != nil {
		return "", fmt.Errorf("presign object url: %w", err)
	}
	return req.URL, nil
}

func (s *S3Store) Download(ctx context.Context, key, localPath string) error {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("get object: %w", err)
	}
	defer func() { _ = out.Body.Close() }()

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, out.Body); err != nil {
		return fmt.Errorf("write staged copy: %w", err)
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("storage.delete_failed", "bucket", s.cfg.Bucket, "key", key, "error", err)
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// objectKey namespaces uploads by project and keeps the original filename
// visible for operators browsing the bucket.
func objectKey(prefix, projectID, filename string) string {
	ts := time.Now().UTC().Format("20060102_150405")
	key := fmt.Sprintf("%s/%s_%s_%s", projectID, uuid.New(), ts, filepath.Base(filename))
	if prefix != "" {
		key = prefix + "/" + key
	}
	return key
}
