package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"Pick-My-Dish/domain"
	"Pick-My-Dish/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectAPI is the subset of the S3 client used here.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type awsS3 struct {
	client ObjectAPI
	bucket string
	region string
}

func NewAwsS3(ctx context.Context, cfg *utils.Config) (Storage, error) {
	if cfg.AWSS3Bucket == "" || cfg.AWSS3Region == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET and AWS_S3_REGION are required for the s3 storage driver")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSS3Region)}
	if cfg.AWSAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewAwsS3WithClient(s3.NewFromConfig(awsCfg), cfg.AWSS3Bucket, cfg.AWSS3Region), nil
}

func NewAwsS3WithClient(client ObjectAPI, bucket, region string) Storage {
	return &awsS3{client: client, bucket: bucket, region: region}
}

func (s *awsS3) UploadFile(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	mtype, err := ValidateImage(file, AllowImage...)
	if err != nil {
		return "", err
	}
	dir, err = cleanRelPath(dir)
	if err != nil {
		return "", domain.NewValidationError("dir", err.Error())
	}

	key := path.Join(dir, GenerateFileName(filePrefix(dir), file.Filename, mtype, time.Now()))

	src, err := file.Open()
	if err != nil {
		return "", &domain.StorageError{Op: "open upload", Err: err}
	}
	defer src.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(file.Size),
		ContentType:   aws.String(mtype.String()),
	})
	if err != nil {
		return "", &domain.StorageError{Op: "put s3 object", Err: err}
	}
	return key, nil
}

func (s *awsS3) DeleteFile(ctx context.Context, relPath string) error {
	key, err := cleanRelPath(relPath)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return &domain.StorageError{Op: "delete s3 object", Err: err}
	}
	return nil
}

func (s *awsS3) PublicURL(relPath string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, strings.TrimPrefix(relPath, "/"))
}
