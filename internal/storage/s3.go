package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectAPI is the subset of *s3.Client used by S3Mirror.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Options configures the object storage mirror.
type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// S3Mirror copies artifacts between the local root and a bucket, for sites
// where the storage root is not shared between machines.
type S3Mirror struct {
	client objectAPI
	bucket string
	local  *Local
}

// NewS3Mirror builds an S3 client from opts. Static credentials are used when
// an access key is given; otherwise the default AWS credential chain applies.
func NewS3Mirror(ctx context.Context, opts S3Options, local *Local) (*S3Mirror, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Mirror{client: client, bucket: opts.Bucket, local: local}, nil
}

// Upload puts the local artifact file into the bucket under its file name.
func (m *S3Mirror) Upload(ctx context.Context, id string) error {
	f, err := os.Open(m.local.Path(id))
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(m.local.Key(id)),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", m.local.Key(id), err)
	}
	return nil
}

// Fetch makes sure the artifact is present locally, downloading it from the
// bucket when missing. An artifact already on disk is left untouched.
func (m *S3Mirror) Fetch(ctx context.Context, id string) error {
	ok, err := m.local.Exists(id)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	out, err := m.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(m.local.Key(id)),
	})
	if err != nil {
		return fmt.Errorf("get %s: %w", m.local.Key(id), err)
	}
	defer out.Body.Close()

	return writeAtomic(m.local.Path(id), out.Body)
}

func writeAtomic(dst string, r io.Reader) error {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".partial-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		return errors.Join(fmt.Errorf("download: %w", err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
