package export

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DirDestination writes artifacts into a local directory.
type DirDestination struct {
	Dir string
}

// Save writes the artifact and returns its path.
func (d DirDestination) Save(ctx context.Context, artifact Artifact) (location string, err error) {
	err = ctx.Err()
	if err != nil {
		return location, err
	}

	err = os.MkdirAll(d.Dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", d.Dir)
		return location, err
	}

	location = filepath.Join(d.Dir, filepath.Base(artifact.FileName))
	err = os.WriteFile(location, artifact.Data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write export file: %s", location)
		return location, err
	}

	return location, err
}

// ObjectPutter is the part of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configure an S3 (or S3-compatible) upload target.
type S3Options struct {
	Bucket    string
	Region    string
	Prefix    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Destination uploads artifacts under <prefix>/<uuid>/<file name>.
type S3Destination struct {
	Client ObjectPutter
	Bucket string
	Prefix string
	NewID  func() string
}

// NewS3Destination builds an S3 client from opts. Static keys are used when given, otherwise the default AWS chain.
func NewS3Destination(ctx context.Context, opts S3Options) (dest *S3Destination, err error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	var awsCfg aws.Config
	awsCfg, err = awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		err = errors.Wrap(err, "failed to load AWS config")
		return dest, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	dest = &S3Destination{
		Client: client,
		Bucket: opts.Bucket,
		Prefix: opts.Prefix,
		NewID:  uuid.NewString,
	}
	return dest, err
}

// Key returns the object key for fileName.
func (d *S3Destination) Key(fileName string) (key string) {
	newID := uuid.NewString
	if d.NewID != nil {
		newID = d.NewID
	}
	key = path.Join(d.Prefix, newID(), path.Base(fileName))
	return key
}

// Save uploads the artifact and returns an s3:// URI.
func (d *S3Destination) Save(ctx context.Context, artifact Artifact) (location string, err error) {
	key := d.Key(artifact.FileName)

	_, err = d.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(artifact.Data),
		ContentType: aws.String(artifact.ContentType),
	})
	if err != nil {
		err = errors.Wrapf(err, "failed to upload %s to bucket %s", key, d.Bucket)
		return location, err
	}

	location = "s3://" + d.Bucket + "/" + key
	return location, err
}
