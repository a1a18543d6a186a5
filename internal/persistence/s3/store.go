// Package s3 persists the snapshot as a single object in an S3-compatible bucket
// (AWS S3 or MinIO).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/persistence"
)

// objectAPI is the part of *s3.Client the store needs.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Config holds the bucket location. Credentials come from the default AWS chain.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional; custom endpoint such as MinIO
	PathStyle bool
	Prefix    string // optional object key prefix
	Key       string
}

// Store reads and writes <prefix>/<key>.json in one bucket.
type Store struct {
	client objectAPI
	bucket string
	object string
}

// New creates an S3 snapshot slot from cfg.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newWithClient(client, cfg), nil
}

func newWithClient(client objectAPI, cfg Config) *Store {
	key := cfg.Key
	if key == "" {
		key = persistence.DefaultKey
	}
	return &Store{client: client, bucket: cfg.Bucket, object: path.Join(cfg.Prefix, key+".json")}
}

func (s *Store) Driver() persistence.Driver { return persistence.DriverS3 }

// Object returns the object key the snapshot is stored under.
func (s *Store) Object() string { return s.object }

func (s *Store) Load(ctx context.Context) (models.Snapshot, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.object})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return models.Snapshot{}, false, nil
		}
		return models.Snapshot{}, false, fmt.Errorf("get %s: %w", s.object, err)
	}
	defer func() { _ = out.Body.Close() }()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("read %s: %w", s.object, err)
	}
	snap, err := persistence.Decode(data)
	if err != nil {
		return models.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *Store) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := persistence.Encode(snap)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &s.object,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", s.object, err)
	}
	return nil
}
